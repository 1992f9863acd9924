package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/uri"
)

var editCmd = &cobra.Command{
	Use:   "edit <uri>",
	Short: "Change components of a URI reference",
	Long: `Edit applies the --clear flags first and then sets the given components
from the scheme to the fragment. Values are percent-encoded as needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("scheme", "", "set the scheme")
	editCmd.Flags().String("user-info", "", "set the user info")
	editCmd.Flags().String("host", "", "set the host")
	editCmd.Flags().String("port", "", "set the port")
	editCmd.Flags().String("path", "", "set the path")
	editCmd.Flags().String("query", "", "set the query")
	editCmd.Flags().StringToString("query-param", nil, "replace the query with key=value pairs")
	editCmd.Flags().String("fragment", "", "set the fragment")
	editCmd.Flags().StringSlice("clear", nil, "clear components (scheme|authority|user-info|host|port|path|query|fragment)")
	editCmd.Flags().Bool("normalize", false, "remove dot segments from the path")
	editCmd.Flags().Bool("validate", false, "fail if the result is not a valid URI reference")
	editCmd.MarkFlagsMutuallyExclusive("query", "query-param")
}

var clearers = map[string]func(u *uri.URI){
	"scheme":    (*uri.URI).ClearScheme,
	"authority": (*uri.URI).ClearAuthority,
	"user-info": (*uri.URI).ClearUserInfo,
	"host":      (*uri.URI).ClearHost,
	"port":      (*uri.URI).ClearPort,
	"path":      (*uri.URI).ClearPath,
	"query":     (*uri.URI).ClearQuery,
	"fragment":  (*uri.URI).ClearFragment,
}

// setters in the order they are applied.
var setters = []struct {
	flag string
	set  func(u *uri.URI, v string) error
}{
	{"scheme", (*uri.URI).SetScheme},
	{"user-info", func(u *uri.URI, v string) error { u.SetUserInfo(v); return nil }},
	{"host", func(u *uri.URI, v string) error { u.SetHost(v); return nil }},
	{"port", (*uri.URI).SetPort},
	{"path", func(u *uri.URI, v string) error { u.SetPath(v); return nil }},
	{"query", func(u *uri.URI, v string) error { u.SetQuery(v); return nil }},
	{"fragment", func(u *uri.URI, v string) error { u.SetFragment(v); return nil }},
}

func runEdit(cmd *cobra.Command, args []string) error {
	u := uri.New(args[0])
	if err := applyEdits(cmd, u); err != nil {
		return err
	}

	validate, err := cmd.Flags().GetBool("validate")
	if err != nil {
		return err
	}
	if validate {
		if err := types.Validate(u); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
	return err
}

func applyEdits(cmd *cobra.Command, u *uri.URI) error {
	fs := cmd.Flags()

	clears, err := fs.GetStringSlice("clear")
	if err != nil {
		return err
	}
	for _, name := range clears {
		fn, ok := clearers[name]
		if !ok {
			return fmt.Errorf("unknown component %q", name)
		}
		fn(u)
		logger.Debug("component cleared", slog.String("component", name), slog.Any("uri", u))
	}

	for _, s := range setters {
		if !fs.Changed(s.flag) {
			continue
		}
		v, err := fs.GetString(s.flag)
		if err != nil {
			return err
		}
		if err := s.set(u, v); err != nil {
			return err
		}
		logger.Debug("component set", slog.String("component", s.flag), slog.String("value", v), slog.Any("uri", u))
	}
	if fs.Changed("query-param") {
		vals, err := fs.GetStringToString("query-param")
		if err != nil {
			return err
		}
		u.SetQueryValues(vals)
		logger.Debug("query params set", slog.Int("count", len(vals)), slog.Any("uri", u))
	}

	normalize, err := fs.GetBool("normalize")
	if err != nil {
		return err
	}
	if normalize {
		u.NormalizePath()
	}
	return nil
}
