package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/budget"
	"github.com/domino14/gomoku/ai/negamax"
	"github.com/domino14/gomoku/ai/outcome"
	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/eval"
	"github.com/domino14/gomoku/threats"
)

type Response struct {
	message string
}

func (r *Response) String() string {
	if r == nil {
		return ""
	}
	return r.message
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) StringDefault(key, defaultS string) string {
	if s := c.String(key); s != "" {
		return s
	}
	return defaultS
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

// newGame: new [bot|human] [-side x|o]
func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	opponent := defaultOpponent
	if len(cmd.args) > 0 {
		opponent = cmd.args[0]
	}
	if opponent == "human" {
		opponent = ""
	} else if !automatic.ValidBot(opponent) {
		return nil, fmt.Errorf("%w: %q, pick human or one of %v",
			automatic.ErrUnknownBot, opponent, automatic.BotNames)
	}
	var bots [2]string
	switch side := strings.ToLower(cmd.options.StringDefault("side", "x")); side {
	case "x":
		bots[1] = opponent
	case "o":
		bots[0] = opponent
	default:
		return nil, fmt.Errorf("side must be x or o, not %q", side)
	}
	if err := sc.newRunner(bots, board.First); err != nil {
		return nil, err
	}
	if err := sc.playBots(context.Background()); err != nil {
		return nil, err
	}
	return msg(sc.runner.ToDisplayText()), nil
}

// play <cell>: plays a human move, and then the bot's reply.
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.runner == nil {
		return nil, ErrNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <cell>, for example play H8")
	}
	if !sc.runner.Playing() {
		return nil, automatic.ErrGameOver
	}
	if sc.botOnTurn() {
		return nil, errors.New("it is not your turn")
	}
	m, err := board.ParseMove(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if sc.runner.Snapshot().At(m) != board.Empty {
		return nil, fmt.Errorf("%w: %v is taken", automatic.ErrIllegalMove, m)
	}
	sc.humanMoves <- m
	ctx := context.Background()
	if _, err := sc.runner.PlayTurn(ctx); err != nil {
		return nil, err
	}
	if err := sc.playBots(ctx); err != nil {
		return nil, err
	}
	return msg(sc.runner.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.runner == nil {
		return nil, ErrNoGame
	}
	return msg(sc.runner.ToDisplayText()), nil
}

// eval shows the pattern tally and both static evaluations, from the
// point of view of the player to move.
func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if sc.runner == nil {
		return nil, ErrNoGame
	}
	b := sc.runner.Snapshot()
	tally := eval.Count(b)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v to move\n", b.Turn())
	sb.WriteString(tally.String())
	fmt.Fprintf(&sb, "pattern: %d\nshape: %d", tally.Score(), eval.Shape{}.Evaluate(b))
	return msg(sb.String()), nil
}

func (sc *ShellController) threats(cmd *shellcmd) (*Response, error) {
	if sc.runner == nil {
		return nil, ErrNoGame
	}
	return msg(threats.Classify(sc.runner.Snapshot()).String()), nil
}

// hint [-engine outcome|negamax|budget]
func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if sc.runner == nil {
		return nil, ErrNoGame
	}
	if !sc.runner.Playing() {
		return nil, automatic.ErrGameOver
	}
	b := sc.runner.Snapshot()
	ev := eval.ByName(sc.config.LeafEvaluator)
	if ev == nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidValue, sc.config.LeafEvaluator)
	}
	switch engine := cmd.options.StringDefault("engine", automatic.BudgetBot); engine {
	case automatic.OutcomeBot:
		s := outcome.NewSearcher(sc.config.OutcomeDepth)
		m, o, ok := s.Search(b)
		if !ok {
			return msg(fmt.Sprintf("no candidates (%d nodes)", s.Nodes())), nil
		}
		return msg(fmt.Sprintf("%v %v (%d nodes)", m, o, s.Nodes())), nil
	case automatic.NegamaxBot:
		s := negamax.NewSolver(sc.config.NegamaxDepth, ev, negamax.NewMemo(sc.config.MemoMemoryFraction))
		s.SetMemoizeInterior(sc.config.NegamaxMemoIntermediate)
		score, m := s.Solve(b)
		return msg(fmt.Sprintf("%v %d (%d nodes)\n%v", m, score, s.Nodes(), s.PrincipalVariation())), nil
	case automatic.BudgetBot:
		s := budget.NewSearcher(sc.config.BudgetCompute, sc.config.BudgetMultiplier,
			sc.config.BudgetPasses, ev)
		res := s.Search(b)
		return msg(fmt.Sprintf("%v (%d nodes)", res, s.Nodes())), nil
	default:
		return nil, fmt.Errorf("%w: %q has no hints", automatic.ErrUnknownBot, engine)
	}
}

// undo takes back moves until a human is on turn, or the board is empty.
func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if sc.runner == nil {
		return nil, ErrNoGame
	}
	if _, err := sc.runner.Undo(); err != nil {
		return nil, err
	}
	for sc.botOnTurn() && len(sc.runner.Moves()) > 0 {
		if _, err := sc.runner.Undo(); err != nil {
			return nil, err
		}
	}
	if err := sc.playBots(context.Background()); err != nil {
		return nil, err
	}
	return msg(sc.runner.ToDisplayText()), nil
}

// autoplay [bot1 [bot2]] [-games n] [-threads n] [-file path]
// autoplay stop
// autoplay analyze [path]
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		switch cmd.args[0] {
		case "stop":
			if sc.autoplayCancel == nil {
				return nil, errors.New("autoplay is not running")
			}
			sc.stopAutoplay()
			return msg("autoplay stopped"), nil
		case "analyze":
			path := sc.config.AutoplayLog
			if len(cmd.args) > 1 {
				path = cmd.args[1]
			}
			out, err := automatic.AnalyzeLogFile(path)
			if err != nil {
				return nil, err
			}
			return msg(out), nil
		}
	}
	if sc.autoplayCancel != nil {
		select {
		case <-sc.autoplayDone:
		default:
			return nil, automatic.ErrAlreadyPlaying
		}
	}

	bot1, bot2 := automatic.BudgetBot, automatic.NegamaxBot
	if len(cmd.args) > 0 {
		bot1 = cmd.args[0]
	}
	if len(cmd.args) > 1 {
		bot2 = cmd.args[1]
	}
	games, err := cmd.options.IntDefault("games", sc.config.AutoplayGames)
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.AutoplayThreads)
	if err != nil {
		return nil, err
	}
	logfile := cmd.options.StringDefault("file", sc.config.AutoplayLog)
	for _, b := range []string{bot1, bot2} {
		if !automatic.ValidBot(b) {
			return nil, fmt.Errorf("%w: %q", automatic.ErrUnknownBot, b)
		}
	}
	f, err := os.Create(logfile)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoplayCancel = cancel
	sc.autoplayDone = done
	go func() {
		defer close(done)
		defer f.Close()
		summary, err := automatic.CompVsComp(ctx, sc.config, bot1, bot2, games, threads, f)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("autoplay-failed")
		}
		if summary != nil {
			sc.showMessage(summary.String())
		}
	}()
	return msg(fmt.Sprintf("playing %d games of %v vs %v on %d threads, logging to %v",
		games, bot1, bot2, threads, logfile)), nil
}

// Cleanup waits for a running autoplay to finish and releases the terminal.
// It is for one-shot use of Execute; Loop cleans up after itself.
func (sc *ShellController) Cleanup() {
	if sc.autoplayDone != nil {
		<-sc.autoplayDone
	}
	if sc.l != nil {
		sc.l.Close()
	}
}

// stopAutoplay cancels a running autoplay and waits for it to wind down.
func (sc *ShellController) stopAutoplay() {
	if sc.autoplayCancel == nil {
		return
	}
	sc.autoplayCancel()
	<-sc.autoplayDone
	sc.autoplayCancel = nil
	sc.autoplayDone = nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	if err := sc.config.Set(key, value); err != nil {
		return nil, err
	}
	err := sc.config.Write()
	if errors.Is(err, config.ErrNoConfigFile) {
		return msg(fmt.Sprintf("set config %s to %s (no config file to save to)", key, value)), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	return msg(fmt.Sprintf("set config %s to %s and saved to file", key, value)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}
