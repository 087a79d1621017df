package automatic

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestCompVsComp(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	summary, err := CompVsComp(context.Background(), testConfig(), RandomBot, OutcomeBot, 6, 3, &buf)
	is.NoErr(err)
	is.Equal(summary.Games, 6)
	is.Equal(summary.Players, [2]string{"random-1", "outcome-2"})
	is.Equal(summary.Wins[0]+summary.Wins[1]+summary.Draws, 6)
	is.Equal(summary.PlayerOneOpened, 3)
	is.Equal(CVCCounter.Value(), int64(6))
	is.Equal(IsPlaying.Value(), int64(0))

	records, err := ParseLog(buf.Bytes())
	is.NoErr(err)
	is.Equal(len(records), 6)
	for _, rec := range records {
		is.Equal(rec.First, "random-1")
		is.Equal(rec.Second, "outcome-2")
		is.Equal(len(rec.Moves), rec.Length)
		is.True(rec.ID != "")
	}
}

func TestCompVsCompUnknownBot(t *testing.T) {
	is := is.New(t)
	_, err := CompVsComp(context.Background(), testConfig(), RandomBot, "elite", 2, 1, nil)
	is.True(errors.Is(err, ErrUnknownBot))
}

func TestCompVsCompCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := CompVsComp(ctx, testConfig(), RandomBot, RandomBot, 100, 2, nil)
	is.True(errors.Is(err, context.Canceled))
	is.True(summary.Games < 100)
	is.Equal(summary.Players, [2]string{"random-1", "random-2"})
}

func sampleRecords() []*GameRecord {
	return []*GameRecord{
		{First: "a", Second: "b", Opener: "a", Result: "a", Length: 9},
		{First: "a", Second: "b", Opener: "b", Result: "b", Length: 20},
		{First: "a", Second: "b", Opener: "a", Result: ResultDraw, Length: 225},
		{First: "a", Second: "b", Opener: "b", Result: "a", Length: 30},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())
	assert.Equal(t, 4, s.Games)
	assert.Equal(t, [2]int{2, 1}, s.Wins)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 2, s.OpenerWins)
	assert.Equal(t, 2, s.PlayerOneOpened)

	out := s.String()
	assert.Contains(t, out, "Games played: 4")
	assert.Contains(t, out, "a wins: 2 (50.000%)")
	assert.Contains(t, out, "Draws: 1")
	assert.Contains(t, out, "a score rate: 0.625")
	assert.Contains(t, out, "min 9  max 225")
	assert.Contains(t, out, "Game length histogram:")

	assert.Equal(t, "Games played: 0\n", Summarize(nil).String())
}

func TestAnalyzeLogFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "games.yaml")
	f, err := os.Create(path)
	is.NoErr(err)
	// Records are appended one list at a time, which still reads back as
	// one list.
	_, err = CompVsComp(context.Background(), testConfig(), RandomBot, RandomBot, 4, 2, f)
	is.NoErr(err)
	is.NoErr(f.Close())

	out, err := AnalyzeLogFile(path)
	is.NoErr(err)
	is.True(strings.Contains(out, "Games played: 4"))
	is.True(strings.Contains(out, "random-1 went first: 2"))

	_, err = AnalyzeLogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}
