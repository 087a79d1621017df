package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
)

const defaultOpponent = automatic.BudgetBot

var ErrNoGame = errors.New("no game in progress; start one with `new`")

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
)

// ShellController runs one interactive game at a time against a bot (or
// between two people at the same terminal), plus background autoplay.
type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	runner *automatic.GameRunner
	// humanMoves feeds every human side of the current game.
	humanMoves chan board.Move
	// bots holds the name of the bot playing each side, indexed like
	// GameRunner's actors; empty for a human.
	bots [2]string

	autoplayCancel context.CancelFunc
	autoplayDone   chan struct{}
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{config: cfg, out: out}
}

// NewShellController creates a shell with a readline prompt on the terminal.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc := newController(cfg, os.Stderr)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgomoku>\033[0m ",
		HistoryFile:     "/tmp/gomoku-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its positional arguments and
// its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if !strings.HasPrefix(fields[i], "-") {
			args = append(args, fields[i])
			continue
		}
		if i == len(fields)-1 {
			return nil, errWrongOptionSyntax
		}
		opt := strings.TrimPrefix(fields[i], "-")
		options[opt] = append(options[opt], fields[i+1])
		i++
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

// Execute runs one command line and returns what it has to say.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "eval":
		return sc.eval(cmd)
	case "threats":
		return sc.threats(cmd)
	case "hint":
		return sc.hint(cmd)
	case "undo":
		return sc.undo(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "config":
		return msg(sc.config.String()), nil
	case "help":
		return sc.help(cmd)
	}
	log.Debug().Msgf("you said: %v", strconv.Quote(line))
	return nil, fmt.Errorf("unknown command %q, try `help`", cmd.cmd)
}

// newRunner starts a game where bots[i] is the bot playing the i-th side,
// or "" for a human.
func (sc *ShellController) newRunner(bots [2]string, turn board.Stone) error {
	sc.closeHuman()
	var actors [2]player.Actor
	var names [2]string
	for i, name := range bots {
		if name == "" {
			if sc.humanMoves == nil {
				sc.humanMoves = make(chan board.Move, 1)
			}
			actors[i] = player.NewHuman(sc.humanMoves)
			names[i] = "human"
			continue
		}
		a, err := automatic.NewBot(sc.config, name)
		if err != nil {
			return err
		}
		actors[i] = a
		names[i] = name
	}
	if names[0] == names[1] {
		names[0], names[1] = automatic.PlayerNames(names[0], names[1])
	}
	sc.runner = automatic.NewGameRunner(actors[0], actors[1], turn)
	sc.runner.SetNames(names[0], names[1])
	sc.bots = bots
	return nil
}

// closeHuman releases any human turn still waiting on the old game.
func (sc *ShellController) closeHuman() {
	if sc.humanMoves != nil {
		close(sc.humanMoves)
		sc.humanMoves = nil
	}
}

func (sc *ShellController) botOnTurn() bool {
	if sc.runner == nil || !sc.runner.Playing() {
		return false
	}
	idx := 0
	if sc.runner.Snapshot().Turn() == board.Second {
		idx = 1
	}
	return sc.bots[idx] != ""
}

// playBots lets bots move until it is a human's turn or the game ends.
func (sc *ShellController) playBots(ctx context.Context) error {
	for sc.botOnTurn() {
		name := sc.runner.NameOnTurn()
		m, err := sc.runner.PlayTurn(ctx)
		if err != nil {
			return err
		}
		sc.showMessage(fmt.Sprintf("%v plays %v", name, m))
	}
	return nil
}

// Loop reads commands until the user quits, then signals sig.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.Execute(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	sc.stopAutoplay()
	sc.closeHuman()
	log.Debug().Msgf("Exiting readline loop...")
}
