package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-side"},
		Args:    append([]string{"human"}, automatic.BotNames...),
	},
	"hint": {
		Options: []string{"-engine"},
	},
	"autoplay": {
		Options: []string{"-games", "-threads", "-file"},
		Args:    append([]string{"stop", "analyze"}, automatic.BotNames...),
	},
	"setconfig": {
		Args: []string{
			config.KeyDebug, config.KeyOutcomeDepth, config.KeyNegamaxDepth,
			config.KeyNegamaxMemoIntermediate, config.KeyMemoMemoryFraction,
			config.KeyBudgetCompute, config.KeyBudgetMultiplier, config.KeyBudgetPasses,
			config.KeyLeafEvaluator, config.KeyAutoplayGames, config.KeyAutoplayThreads,
			config.KeyAutoplayLog,
		},
	},
	"help": {
		Args: []string{"new", "play", "hint", "autoplay", "setconfig"},
	},
}

var commandNames = []string{
	"new", "play", "show", "undo", "eval", "threats", "hint", "autoplay",
	"config", "setconfig", "help", "exit",
}

var (
	sideValues  = []string{"x", "o"}
	hintEngines = []string{automatic.OutcomeBot, automatic.NegamaxBot, automatic.BudgetBot}
)

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}
		switch lastCompleteField {
		case "-side":
			completions = sideValues
		case "-engine":
			completions = hintEngines
		}
		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	matches := lo.FilterMap(completions, func(s string, _ int) ([]rune, bool) {
		if !strings.HasPrefix(s, prefix) {
			return nil, false
		}
		return []rune(s[len(prefix):]), true
	})
	return matches, len(prefix)
}
