package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/uri"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <uri>...",
	Short: "Remove dot segments from the path of URI references",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			u := uri.New(arg)
			if !u.IsNormalized() {
				u.NormalizePath()
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), u); err != nil {
				return err
			}
		}
		return nil
	},
}
