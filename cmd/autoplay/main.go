// Command autoplay plays batches of bot-versus-bot games and summarizes
// them.
//
//	autoplay [flags] [bot1 [bot2]]
//	autoplay [flags] analyze [logfile]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("autoplay-failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	args := cfg.Args()
	if len(args) > 0 && args[0] == "analyze" {
		path := cfg.AutoplayLog
		if len(args) > 1 {
			path = args[1]
		}
		out, err := automatic.AnalyzeLogFile(path)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	bot1, bot2 := automatic.BudgetBot, automatic.NegamaxBot
	if len(args) > 0 {
		bot1 = args[0]
	}
	if len(args) > 1 {
		bot2 = args[1]
	}

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	f, err := os.Create(cfg.AutoplayLog)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("first", bot1).Str("second", bot2).Int("games", cfg.AutoplayGames).
		Int("threads", cfg.AutoplayThreads).Str("log", cfg.AutoplayLog).Msg("autoplay-starting")
	start := time.Now()
	summary, err := automatic.CompVsComp(ctx, cfg, bot1, bot2,
		cfg.AutoplayGames, cfg.AutoplayThreads, f)
	if summary != nil {
		fmt.Print(summary)
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("autoplay-done")
	return err
}
