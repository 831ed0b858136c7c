package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rpggio/checkmaster/internal/config"
	"github.com/spf13/cobra"
)

// App holds state shared by all subcommands.
type App struct {
	ConfigPath string

	cfg    config.Config
	logger *slog.Logger
	closer []func() error
}

func newRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "checkmaster",
		Short:        "Structural review checklist engine with an MCP server",
		SilenceUsage: true,
		Version:      version,
		Example: strings.TrimSpace(`
  # Serve MCP over stdio (default)
  checkmaster serve

  # Serve MCP over streamable HTTP with /metrics
  CHECKMASTER_TRANSPORT=http checkmaster serve

  # Print progress per section
  checkmaster show

  # Export every section as YAML
  checkmaster export --scope all --format yaml
`),
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to a YAML config file (overrides CHECKMASTER_CONFIG_PATH)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		app.cfg = cfg

		logger, closeLog := newLogger(cfg, cmd.ErrOrStderr())
		app.logger = logger
		if closeLog != nil {
			app.closer = append(app.closer, closeLog)
		}
		return nil
	}

	cmd.AddCommand(
		newServeCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newResetCmd(app),
	)

	return cmd
}

// Close releases everything opened for the command, last opened first.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closer) - 1; i >= 0; i-- {
		if err := a.closer[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closer = nil
	return firstErr
}

// newLogger builds the text logger. Logs never go to stdout so that stdio
// mode keeps it clean for JSON-RPC and CLI output stays parseable.
func newLogger(cfg config.Config, stderr io.Writer) (*slog.Logger, func() error) {
	logWriter := stderr
	var closeLog func() error
	if cfg.Log.Path != "" {
		fileWriter, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			logWriter = fileWriter
			closeLog = fileWriter.Close
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return logger, closeLog
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
