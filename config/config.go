package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidValue = errors.New("invalid config value")
	ErrNoConfigFile = errors.New("no config file was specified")
)

// LeafEvaluators are the valid values of leaf-evaluator.
var LeafEvaluators = []string{"pattern", "shape"}

const envPrefix = "GOMOKU"

const (
	KeyDebug                   = "debug"
	KeyConfigFile              = "config-file"
	KeyCPUProfile              = "cpu-profile"
	KeyOutcomeDepth            = "outcome-depth"
	KeyNegamaxDepth            = "negamax-depth"
	KeyNegamaxMemoIntermediate = "negamax-memo-intermediate"
	KeyMemoMemoryFraction      = "memo-memory-fraction"
	KeyBudgetCompute           = "budget-compute"
	KeyBudgetMultiplier        = "budget-multiplier"
	KeyBudgetPasses            = "budget-passes"
	KeyLeafEvaluator           = "leaf-evaluator"
	KeyAutoplayGames           = "autoplay-games"
	KeyAutoplayThreads         = "autoplay-threads"
	KeyAutoplayLog             = "autoplay-log"
)

// Config holds every tunable of the engine and its front ends. Values come,
// from lowest to highest precedence, from flag defaults, the config file,
// GOMOKU_* environment variables and flags given on the command line.
type Config struct {
	Debug      bool   `mapstructure:"debug"`
	ConfigFile string `mapstructure:"config-file"`
	CPUProfile string `mapstructure:"cpu-profile"`

	OutcomeDepth            int     `mapstructure:"outcome-depth"`
	NegamaxDepth            int     `mapstructure:"negamax-depth"`
	NegamaxMemoIntermediate bool    `mapstructure:"negamax-memo-intermediate"`
	MemoMemoryFraction      float64 `mapstructure:"memo-memory-fraction"`
	BudgetCompute           float64 `mapstructure:"budget-compute"`
	BudgetMultiplier        float64 `mapstructure:"budget-multiplier"`
	BudgetPasses            int     `mapstructure:"budget-passes"`
	LeafEvaluator           string  `mapstructure:"leaf-evaluator"`

	AutoplayGames   int    `mapstructure:"autoplay-games"`
	AutoplayThreads int    `mapstructure:"autoplay-threads"`
	AutoplayLog     string `mapstructure:"autoplay-log"`

	v    *viper.Viper
	args []string
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gomoku", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Bool(KeyDebug, false, "debug logging on")
	fs.String(KeyConfigFile, "", "optional YAML config file")
	fs.String(KeyCPUProfile, "", "write a cpu profile to this file")
	fs.Int(KeyOutcomeDepth, 2, "ply limit of the outcome search")
	fs.Int(KeyNegamaxDepth, 3, "ply limit of the negamax search")
	fs.Bool(KeyNegamaxMemoIntermediate, false, "also memoize interior negamax nodes, not only leaves")
	fs.Float64(KeyMemoMemoryFraction, 0.1, "fraction of system memory the negamax memo may use")
	fs.Float64(KeyBudgetCompute, 400_000, "compute budget of the budget search")
	fs.Float64(KeyBudgetMultiplier, 2, "budget growth per widening pass")
	fs.Int(KeyBudgetPasses, 2, "number of widening passes of the budget search")
	fs.String(KeyLeafEvaluator, "pattern", "static evaluator for search leaves: "+strings.Join(LeafEvaluators, ", "))
	fs.Int(KeyAutoplayGames, 10, "number of games to play in autoplay")
	fs.Int(KeyAutoplayThreads, 4, "number of games played at once in autoplay")
	fs.String(KeyAutoplayLog, "/tmp/gomoku-autoplay.yaml", "where autoplay writes its game records")
	return fs
}

// Load parses args and merges them with the config file and the
// environment.
func (c *Config) Load(args []string) error {
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if f := v.GetString(KeyConfigFile); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %v: %w", f, err)
		}
	}
	c.v = v
	c.args = fs.Args()
	return c.refresh()
}

// Args returns what was left of the command line after the flags.
func (c *Config) Args() []string {
	return c.args
}

// Default returns a config with nothing but default values.
func Default() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

func (c *Config) refresh() error {
	if err := c.v.Unmarshal(c); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch {
	case c.OutcomeDepth < 1:
		return fmt.Errorf("%w: %v must be at least 1", ErrInvalidValue, KeyOutcomeDepth)
	case c.NegamaxDepth < 1:
		return fmt.Errorf("%w: %v must be at least 1", ErrInvalidValue, KeyNegamaxDepth)
	case c.MemoMemoryFraction <= 0 || c.MemoMemoryFraction > 1:
		return fmt.Errorf("%w: %v must be in (0, 1]", ErrInvalidValue, KeyMemoMemoryFraction)
	case c.BudgetMultiplier <= 1:
		return fmt.Errorf("%w: %v must be greater than 1", ErrInvalidValue, KeyBudgetMultiplier)
	case c.BudgetPasses < 0:
		return fmt.Errorf("%w: %v cannot be negative", ErrInvalidValue, KeyBudgetPasses)
	case !slices.Contains(LeafEvaluators, c.LeafEvaluator):
		return fmt.Errorf("%w: %v must be one of %v", ErrInvalidValue, KeyLeafEvaluator, LeafEvaluators)
	case c.AutoplayThreads < 1:
		return fmt.Errorf("%w: %v must be at least 1", ErrInvalidValue, KeyAutoplayThreads)
	}
	return nil
}

// Set changes a single key. The value is parsed according to the type of
// the key. On error the config is left unchanged.
func (c *Config) Set(key, value string) error {
	if !slices.Contains(c.v.AllKeys(), key) {
		return fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	old := c.v.Get(key)
	c.v.Set(key, value)
	if err := c.refresh(); err != nil {
		c.v.Set(key, old)
		if rerr := c.refresh(); rerr != nil {
			return rerr
		}
		return fmt.Errorf("setting %v: %w", key, err)
	}
	return nil
}

// Write saves the current settings to the config file.
func (c *Config) Write() error {
	if c.ConfigFile == "" {
		return ErrNoConfigFile
	}
	return c.v.WriteConfigAs(c.ConfigFile)
}

// String renders the current settings as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c.v.AllSettings())
	if err != nil {
		return err.Error()
	}
	return string(out)
}
