package automatic

// Computer versus computer games, and the records they leave behind.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

const (
	ResultDraw       = "draw"
	ResultUnfinished = "unfinished"
)

// GameRecord is what the log file keeps of a game. Result is the name of
// the winner, ResultDraw or ResultUnfinished.
type GameRecord struct {
	ID         string   `yaml:"id"`
	First      string   `yaml:"first"`
	Second     string   `yaml:"second"`
	Opener     string   `yaml:"opener"`
	Result     string   `yaml:"result"`
	Winner     string   `yaml:"winner,omitempty"`
	Length     int      `yaml:"length"`
	DurationMS int64    `yaml:"duration_ms"`
	Moves      []string `yaml:"moves,flow"`
}

// PlayerNames returns the names CompVsComp gives the two bots, which are
// distinct even when both run the same bot.
func PlayerNames(bot1, bot2 string) (string, string) {
	return bot1 + "-1", bot2 + "-2"
}

// CompVsComp plays numGames games between bot1 (always the First stones)
// and bot2 on threads goroutines. The opener alternates from game to game.
// Each finished game is appended to logStream, if not nil, as a YAML list
// item. It returns a summary of the games that finished, even if it stops
// early because ctx is done or a game failed.
func CompVsComp(ctx context.Context, cfg *config.Config, bot1, bot2 string,
	numGames, threads int, logStream io.Writer) (*Summary, error) {

	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	for _, b := range []string{bot1, bot2} {
		if !ValidBot(b) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBot, b)
		}
	}
	name1, name2 := PlayerNames(bot1, bot2)
	log.Debug().Int("games", numGames).Int("threads", threads).
		Str("first", name1).Str("second", name2).Msg("starting-cvc")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	CVCCounter.Set(0)

	jobs := make(chan int)
	records := make(chan *GameRecord)
	ctrl, gctx := errgroup.WithContext(ctx)

	ctrl.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("got stop signal, exiting soon...")
				return nil
			}
		}
		return nil
	})

	workers := errgroup.Group{}
	for t := 0; t < threads; t++ {
		workers.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			a1, err := NewBot(cfg, bot1)
			if err != nil {
				return err
			}
			a2, err := NewBot(cfg, bot2)
			if err != nil {
				return err
			}
			r := NewGameRunner(a1, a2, board.First)
			r.SetNames(name1, name2)
			for i := range jobs {
				turn := board.First
				if i%2 == 1 {
					turn = board.Second
				}
				r.Reset(turn)
				rec, err := r.PlayGame(gctx)
				if err != nil {
					return fmt.Errorf("game %d on thread %d: %w", i, t, err)
				}
				CVCCounter.Add(1)
				select {
				case records <- rec:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	ctrl.Go(func() error {
		defer close(records)
		return workers.Wait()
	})

	var played []*GameRecord
	var writeErr error
	for rec := range records {
		played = append(played, rec)
		if logStream == nil || writeErr != nil {
			continue
		}
		out, err := yaml.Marshal([]*GameRecord{rec})
		if err == nil {
			_, err = logStream.Write(out)
		}
		if err != nil {
			log.Error().Err(err).Msg("writing-game-record")
			writeErr = err
			cancel()
		}
	}
	err := ctrl.Wait()
	if err == nil {
		err = ctx.Err()
	}
	log.Info().Int("played", len(played)).Msg("all-games-finished")

	summary := Summarize(played)
	summary.Players = [2]string{name1, name2}
	if writeErr != nil {
		return summary, writeErr
	}
	return summary, err
}
