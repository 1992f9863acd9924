package main

import (
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/uri"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <uri>...",
	Short: "Print the components of URI references",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Bool("strict", false, "fail on the first reference that is not a valid URI reference")
}

func runInspect(cmd *cobra.Command, args []string) error {
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}
	out, err := newOutput(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	for _, arg := range args {
		if strict {
			if _, err := uri.Parse(arg); err != nil {
				return err
			}
		}
		if err := out.write(newReport(uri.NewView(arg), logger)); err != nil {
			return err
		}
	}
	return nil
}
