package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/uri"
)

// charsets maps the --set names to the bytes kept unescaped.
var charsets = map[string]uri.Charset{
	"uri":        uri.AllowedInURI,
	"unreserved": uri.Unreserved,
	"userinfo":   uri.UserInfoChars,
	"host":       uri.RegNameChars,
	"segment":    uri.PChar,
	"path":       uri.PathChars,
	"query":      uri.QueryOrFragmentChars,
	"fragment":   uri.QueryOrFragmentChars,
	"param":      uri.QueryParamChars,
}

func charsetNames() string {
	names := make([]string, 0, len(charsets))
	for n := range charsets {
		names = append(names, n)
	}
	slices.Sort(names)
	return strings.Join(names, "|")
}

func charsetFlag(cmd *cobra.Command) (uri.Charset, error) {
	name, err := cmd.Flags().GetString("set")
	if err != nil {
		return uri.Charset{}, err
	}
	cs, ok := charsets[name]
	if !ok {
		return uri.Charset{}, fmt.Errorf("unknown character set %q, want one of %s", name, charsetNames())
	}
	return cs, nil
}

var encodeCmd = &cobra.Command{
	Use:   "encode <text>...",
	Short: "Percent-encode text for a URI component",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charsetFlag(cmd)
		if err != nil {
			return err
		}
		for _, arg := range args {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), uri.Encode(arg, cs)); err != nil {
				return err
			}
		}
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <text>...",
	Short: "Percent-decode URI component text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charsetFlag(cmd)
		if err != nil {
			return err
		}
		for _, arg := range args {
			s, ok := uri.Decode(arg, cs)
			if !ok {
				return fmt.Errorf("%q is not decodable with the %s set", arg, cmd.Flag("set").Value)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().String("set", "uri", "characters kept unescaped ("+charsetNames()+")")
	decodeCmd.Flags().String("set", "uri", "characters allowed unescaped ("+charsetNames()+")")
}
