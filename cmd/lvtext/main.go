package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtext/freqsub"
	"github.com/katalvlaran/lvtext/internal/batch"
	"github.com/katalvlaran/lvtext/internal/config"
	"github.com/katalvlaran/lvtext/internal/logger"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

// app holds state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg      config.Config
	log      logger.Logger
	settings batch.Settings
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode returns 2 for caller-input errors and 1 for everything else.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if batch.IsInvalidInput(err) {
		return exitInvalidInput
	}
	return exitFailure
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lvtext",
		Short: "lvtext - run-length encoding, frequent substrings and date normalization",
		Long: `lvtext exposes three pure string transformations:

  encode / decode  run-length encode lowercase+space text ("aaa" -> "3a")
  find             longest substring whose characters occur >= k times
  reformat         normalize a date to YYYY-MM-DD

Use "batch" to evaluate a YAML or TOML job file concurrently.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML or TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (trace|debug|info|warn|error|off)")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newFindCmd(a),
		newReformatCmd(a),
		newBatchCmd(a),
	)
	return root
}

// init resolves config and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	strategy, err := freqsub.ParseStrategy(cfg.Finder.Strategy)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Component: "cli",
		Writer:    cmd.ErrOrStderr(),
	})
	a.settings = batch.Settings{MaxDecodedLen: cfg.RLE.MaxDecodedLen, Strategy: strategy}
	a.log.Debug().Str("command", cmd.Name()).Str("strategy", strategy.String()).Msg("configured")
	return nil
}
