package commands

import (
	"fmt"

	"github.com/cosmo-tools/astro-atlas/pkg/runtime/terminal/export"
	"github.com/cosmo-tools/astro-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd builds the `generate` subcommand.
func NewGenerateCmd(generator *report.Generator, reporter *export.Reporter) *cobra.Command {
	var profilePath string
	var years int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an astrology report from a profile file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := LoadProfile(profilePath)
			if err != nil {
				return err
			}

			if violations := report.ValidateProfile(profile); len(violations) > 0 {
				for _, v := range violations {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", v)
				}
				return fmt.Errorf("profile has %d validation problem(s)", len(violations))
			}

			generated, err := generator.Generate(profile, years)
			if err != nil {
				return err
			}
			return reporter.Handle(&generated)
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "profile.yaml",
		"Path to the profile file (YAML or JSON)")
	cmd.Flags().IntVarP(&years, "years", "y", 1,
		"Report duration in years (1, 3 or 5)")

	return cmd
}
