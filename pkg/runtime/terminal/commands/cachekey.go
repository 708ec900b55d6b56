package commands

import (
	"fmt"
	"io"

	"github.com/cosmo-tools/astro-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// NewCacheKeyCmd builds the `cache-key` subcommand.
func NewCacheKeyCmd(out io.Writer) *cobra.Command {
	var profilePath string
	var years int

	cmd := &cobra.Command{
		Use:   "cache-key",
		Short: "Print the deterministic cache token for a profile and duration",
		RunE: func(_ *cobra.Command, _ []string) error {
			profile, err := LoadProfile(profilePath)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, report.CacheKey(profile, years))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "profile.yaml",
		"Path to the profile file (YAML or JSON)")
	cmd.Flags().IntVarP(&years, "years", "y", 1,
		"Report duration in years (1, 3 or 5)")

	return cmd
}
