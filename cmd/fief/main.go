package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/boardgameodds/fief/internal/config"
	"github.com/boardgameodds/fief/internal/logging"
	"github.com/boardgameodds/fief/internal/simulator"
)

// app carries state shared by the subcommands once flags and config are read
type app struct {
	configFile string
	quiet      bool

	settings config.Config
	logger   zerolog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fief",
		Short: "Fief battle odds estimator",
		Long: `Estimates the win, tie and loss probabilities of a Fief battle between
two armies by simulating many independent engagements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "Path to config file (JSON, YAML or TOML)")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Minimal output")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.Uint64("seed", 0, "Random seed, 0 for an unseeded run")
	flags.Int("workers", 0, "Parallel workers, 0 for one per CPU")
	flags.IntP("trials", "t", simulator.DefaultTrials, "Number of simulated battles")
	addArmyFlags(flags, "a", "army.a", "attacking")
	addArmyFlags(flags, "b", "army.b", "defending")

	bind(flags, "logLevel", "log-level")
	bind(flags, "seed", "seed")
	bind(flags, "workers", "workers")
	bind(flags, "trials", "trials")

	rootCmd.AddCommand(
		newSimulateCmd(a),
		newBattleCmd(a),
		newOddsCmd(a),
		newEditCmd(a),
		newUnitsCmd(a),
	)
	return rootCmd
}

// load reads the config file and environment, with explicit flags taking
// precedence through their viper bindings
func (a *app) load() error {
	if err := config.Load(a.configFile); err != nil {
		return err
	}
	settings, err := config.Get()
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logging.New(os.Stderr, settings.LogLevel)

	if file := config.UsedFile(); file != "" {
		a.logger.Debug().Str("file", file).Msg("Loaded config")
	}
	return nil
}

func (a *app) simulator(progress func(done, total int)) *simulator.Simulator {
	cfg := a.settings.Simulator()
	cfg.Progress = progress
	return simulator.NewSimulator(cfg, a.logger)
}

func (a *app) banner(w io.Writer, subtitle string) {
	if a.quiet {
		return
	}
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Fprintln(w, "\n╭───────────────────────────╮")
	titleColor.Fprintln(w, "│  Fief                     │")
	titleColor.Fprintf(w, "│  %-25s│\n", subtitle)
	titleColor.Fprintln(w, "╰───────────────────────────╯")
	fmt.Fprintln(w)
}

func bind(flags *pflag.FlagSet, key, name string) {
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", name, err))
	}
}
