package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
)

type options struct {
	configPath string
	logLevel   string
}

// NewRootCmd - builds the command tree. in and out carry the interactive game, logs go to errOut.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal",
		Long: `tictactoe is a two-player tic-tac-toe game for the terminal.

Play against a friend or the computer. Every move is saved, so an
unfinished game can be resumed from the main menu.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, in, out, errOut, func(ctx context.Context, session *application.Session) error {
				return session.Run(ctx)
			})
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newSimulateCmd(opts, in, out, errOut))
	rootCmd.AddCommand(newDiscardCmd(opts, in, out, errOut))

	return rootCmd
}

// Execute runs the root command against the process streams.
func Execute() {
	if err := NewRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, in io.Reader, out, errOut io.Writer, action application.Action) error {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.logLevel != "" {
		conf.LogLevel = opts.logLevel
	}

	logger := initLogger(conf, errOut)

	return application.RunApp(ctx, logger, conf, console.New(in, out), action)
}

func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
