package automatic

import (
	"fmt"
	"os"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/domino14/gomoku/stats"
)

const (
	histogramBins  = 10
	histogramWidth = 40
	confidence     = 95
)

// Summary aggregates a batch of game records between two players.
type Summary struct {
	Players    [2]string
	Games      int
	Wins       [2]int
	Draws      int
	Unfinished int
	// OpenerWins counts games won by whoever moved first.
	OpenerWins int
	// PlayerOneOpened counts games in which Players[0] moved first.
	PlayerOneOpened int
	Lengths         []float64
}

// Summarize builds a summary. The players are taken from the first record.
func Summarize(records []*GameRecord) *Summary {
	s := &Summary{}
	if len(records) == 0 {
		return s
	}
	s.Players = [2]string{records[0].First, records[0].Second}
	for _, rec := range records {
		s.Games++
		switch rec.Result {
		case ResultDraw:
			s.Draws++
		case ResultUnfinished:
			s.Unfinished++
		case s.Players[0]:
			s.Wins[0]++
		case s.Players[1]:
			s.Wins[1]++
		}
		if rec.Result == rec.Opener {
			s.OpenerWins++
		}
		if rec.Opener == s.Players[0] {
			s.PlayerOneOpened++
		}
		s.Lengths = append(s.Lengths, float64(rec.Length))
	}
	return s
}

func pct(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return 100 * float64(n) / float64(d)
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", s.Games)
	if s.Games == 0 {
		return sb.String()
	}
	p1score := float64(s.Wins[0]) + float64(s.Draws)/2
	lower, upper := stats.WinRateInterval(p1score, s.Games, confidence)
	fmt.Fprintf(&sb, "%v wins: %d (%.3f%%)\n", s.Players[0], s.Wins[0], pct(s.Wins[0], s.Games))
	fmt.Fprintf(&sb, "%v wins: %d (%.3f%%)\n", s.Players[1], s.Wins[1], pct(s.Wins[1], s.Games))
	fmt.Fprintf(&sb, "Draws: %d\n", s.Draws)
	if s.Unfinished > 0 {
		fmt.Fprintf(&sb, "Unfinished: %d\n", s.Unfinished)
	}
	fmt.Fprintf(&sb, "%v score rate: %.3f (%d%% CI %.3f - %.3f)\n",
		s.Players[0], p1score/float64(s.Games), confidence, lower, upper)
	fmt.Fprintf(&sb, "%v went first: %d (%.3f%%)\n",
		s.Players[0], s.PlayerOneOpened, pct(s.PlayerOneOpened, s.Games))
	fmt.Fprintf(&sb, "Player who went first wins: %d (%.3f%%)\n",
		s.OpenerWins, pct(s.OpenerWins, s.Games))

	mean, stdev := stat.MeanStdDev(s.Lengths, nil)
	if s.Games == 1 {
		stdev = 0
	}
	var lengths stats.Statistic
	lo.ForEach(s.Lengths, func(l float64, _ int) { lengths.Push(l) })
	fmt.Fprintf(&sb, "Game length: mean %.2f  stdev %.2f  min %.0f  max %.0f\n",
		mean, stdev, lengths.Min(), lengths.Max())

	if lengths.Min() < lengths.Max() {
		sb.WriteString("Game length histogram:\n")
		h := histogram.Hist(histogramBins, s.Lengths)
		if err := histogram.Fprint(&sb, h, histogram.Linear(histogramWidth)); err != nil {
			fmt.Fprintf(&sb, "(histogram unavailable: %v)\n", err)
		}
	}
	return sb.String()
}

// ParseLog decodes a log written by CompVsComp: a YAML list of game records.
func ParseLog(contents []byte) ([]*GameRecord, error) {
	var records []*GameRecord
	if err := yaml.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("parsing game log: %w", err)
	}
	return lo.Filter(records, func(r *GameRecord, _ int) bool { return r != nil }), nil
}

// AnalyzeLogFile analyzes the given game log and spits out a bunch of
// statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	contents, err := os.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	records, err := ParseLog(contents)
	if err != nil {
		return "", err
	}
	return Summarize(records).String(), nil
}
