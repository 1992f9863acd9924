// Command urictl inspects, edits and resolves URI references.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
)

var rootCmd = &cobra.Command{
	Use:           "urictl",
	Short:         "Inspect, edit and resolve URI references",
	Long:          `urictl parses RFC 3986 URI references, prints their components and applies edits or reference resolution.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: setup,
}

// logger is set up by the root command before any subcommand runs.
var logger = log.Noop

// cfg holds the settings after the config file and flags are applied.
var cfg = defaultSettings()

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(batchCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("format", "pretty", "output format (pretty|json|msgpack)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("log-dev", false, "use the developer log handler")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for rejected URI text and 1 for other failures.
func exitCode(err error) int {
	if errorutil.IsGrammarErr(err) || errorutil.IsComponentErr(err) {
		return 2
	}
	return 1
}

func setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	s := defaultSettings()
	if path != "" {
		if s, err = loadSettings(path); err != nil {
			return err
		}
	}
	if err := s.applyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := s.validate(); err != nil {
		return err
	}
	cfg = s

	errOut := cmd.ErrOrStderr()
	logger = log.New(errOut, &log.Options{
		Level:   s.logLevel(),
		Dev:     s.Log.Dev,
		NoColor: !s.useColor(errOut),
	})
	logger.Debug("settings loaded", slog.String("config", path), slog.Any("settings", log.FmtValue(s, false)))
	return nil
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
