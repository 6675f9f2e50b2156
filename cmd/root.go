package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/easyfocus/easyfocus/internal/config"
	"github.com/easyfocus/easyfocus/internal/logging"
	"github.com/easyfocus/easyfocus/internal/output"
	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/selection"
	"github.com/easyfocus/easyfocus/internal/version"
)

var (
	// cfg and logger are set by the root PersistentPreRunE.
	cfg    *config.Config
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "easyfocus",
	Short: "Focus i3/sway windows by typing a label",
	Long: `Show a short keyboard label on every visible window and focus the window
whose label is typed. Escape (or the configured cancel key) aborts.

Examples:
  easyfocus                 label windows on the current output
  easyfocus -a              label windows on all outputs
  easyfocus -c              only windows in the current container
  easyfocus -r              keep selecting until cancelled
  easyfocus -i              print the con_id instead of focusing`,
	Args: cobra.NoArgs,
	RunE: runPicker,
}

// Execute runs the command line and exits with the status of the run.
func Execute() {
	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		output.Errorf("%v", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	// Assigned here rather than in the literal: setup refers to rootCmd.
	rootCmd.PersistentPreRunE = setup
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.SilenceErrors = true

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/easyfocus/config.yaml)")
	pf.String("format", "", "Output format: yaml, json, table (default table on a terminal, yaml otherwise)")
	pf.Bool("pretty", false, "Indent JSON output")
	pf.Bool("debug", false, "Shorthand for --log-level debug")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Append logs to this file instead of stderr")

	pf.BoolP("all", "a", false, "Label windows on all outputs")
	pf.BoolP("current", "c", false, "Only label windows in the current container")
	pf.StringP("sort-by", "s", "location", "Workspace order with --all: location, num")
	pf.StringP("keys", "k", "avy", "Label keys: avy, colemak, alpha")
	pf.StringP("modifier", "m", "", "Modifiers held with label keys, e.g. mod1+shift")
	pf.String("cancel-key", selection.DefaultCancelKey, "Key that aborts the selection")
	for _, name := range []string{"urgent", "focused", "unfocused"} {
		pf.String("color-"+name+"-bg", "", "Label background for "+name+" windows (hex RGB)")
		pf.String("color-"+name+"-fg", "", "Label foreground for "+name+" windows (hex RGB)")
	}

	f := rootCmd.Flags()
	f.BoolP("rapid", "r", false, "Repeat the selection until cancelled")
	f.BoolP("con-id", "i", false, "Print the con_id of the selected window instead of focusing it")
	f.BoolP("window-id", "w", false, "Print the X11 window id of the selected window instead of focusing it")
	f.String("display", "auto", "Label display: auto, x11, tty")
	f.Duration("timeout", 0, "Cancel when no key is pressed within this duration (0 waits forever)")
	rootCmd.MarkFlagsMutuallyExclusive("all", "current")
	rootCmd.MarkFlagsMutuallyExclusive("con-id", "window-id")
}

// setup loads the configuration and prepares logging and output.
func setup(cmd *cobra.Command, args []string) error {
	// Flag errors still print usage; anything later does not.
	cmd.SilenceUsage = true

	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(cmd.Flags(), path)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(c.LogLevel)
	opts := []logging.Option{logging.WithLevel(level), logging.WithConsole(os.Stderr)}
	if c.LogFile != "" {
		opts = append(opts, logging.WithFile(c.LogFile))
	}
	l, err := logging.New(opts...)
	if err != nil {
		return err
	}
	logger = l
	cfg = c
	if c.File != "" {
		logger.Debug("config loaded", "file", c.File)
	}

	// Use the root persistent flag directly so subcommand flags with the
	// same name cannot shadow it.
	format, _ := rootCmd.PersistentFlags().GetString("format")
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f
	output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
	return nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	if cfg.SortWithoutAll() {
		logger.Warn("--sort-by has no effect without --all", "sort-by", cfg.SortBy)
	}
	opts, err := cfg.SelectionOptions()
	if err != nil {
		return err
	}
	displayOpts, err := cfg.DisplayOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := platform.NewProvider(ctx, cfg.Display, displayOpts)
	if err != nil {
		return fmt.Errorf("%w: %w", selection.ErrConnection, err)
	}
	defer provider.Close()

	c := selection.New(selection.Session{
		WM:      provider.WindowManager,
		Display: provider.Display,
		Log:     logger,
		Out:     output.Out,
	}, opts)
	out, err := c.Run(ctx)
	logger.Debug("run finished", "status", out.Status.String(), "rounds", out.Rounds, "selected", out.Selected)
	return outcomeError(out, err, opts.Rapid)
}
