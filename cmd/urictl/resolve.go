package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/uri"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <base> <reference>...",
	Short: "Resolve references against an absolute base URI",
	Long: `Resolve applies RFC 3986 section 5.2 reference resolution
to every reference using the base URI and prints the targets.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Bool("inspect", false, "print the components of every target")
}

func runResolve(cmd *cobra.Command, args []string) error {
	detailed, err := cmd.Flags().GetBool("inspect")
	if err != nil {
		return err
	}
	base, err := uri.Parse(args[0])
	if err != nil {
		return fmt.Errorf("base: %w", err)
	}
	out, err := newOutput(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	for _, ref := range args[1:] {
		target, err := base.ResolveString(ref)
		if err != nil {
			return err
		}
		logger.Debug("reference resolved",
			slog.Any("base", base),
			slog.String("reference", ref),
			slog.Any("target", target),
		)
		if detailed {
			if err := out.write(newReport(target, logger)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), target); err != nil {
			return err
		}
	}
	return nil
}
