package automatic

import (
	"errors"
	"fmt"
	"slices"

	"github.com/domino14/gomoku/ai/budget"
	"github.com/domino14/gomoku/ai/negamax"
	"github.com/domino14/gomoku/ai/outcome"
	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/eval"
)

const (
	RandomBot  = "random"
	OutcomeBot = "outcome"
	NegamaxBot = "negamax"
	BudgetBot  = "budget"
)

// BotNames lists every name NewBot accepts.
var BotNames = []string{RandomBot, OutcomeBot, NegamaxBot, BudgetBot}

var ErrUnknownBot = errors.New("unknown bot")

// NewBot builds the named computer player with the search settings from
// cfg. Bots keep state between moves and must not be shared between games
// running at the same time.
func NewBot(cfg *config.Config, name string) (player.Actor, error) {
	ev := eval.ByName(cfg.LeafEvaluator)
	if ev == nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidValue, cfg.LeafEvaluator)
	}
	switch name {
	case RandomBot:
		return player.Random{}, nil
	case OutcomeBot:
		return outcome.NewSearcher(cfg.OutcomeDepth), nil
	case NegamaxBot:
		s := negamax.NewSolver(cfg.NegamaxDepth, ev, negamax.NewMemo(cfg.MemoMemoryFraction))
		s.SetMemoizeInterior(cfg.NegamaxMemoIntermediate)
		return s, nil
	case BudgetBot:
		return budget.NewSearcher(cfg.BudgetCompute, cfg.BudgetMultiplier, cfg.BudgetPasses, ev), nil
	}
	return nil, fmt.Errorf("%w: %q, pick one of %v", ErrUnknownBot, name, BotNames)
}

// ValidBot returns whether NewBot knows name.
func ValidBot(name string) bool {
	return slices.Contains(BotNames, name)
}
