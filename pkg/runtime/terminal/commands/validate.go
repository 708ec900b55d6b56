package commands

import (
	"fmt"
	"io"

	"github.com/cosmo-tools/astro-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// NewValidateCmd builds the `validate` subcommand.
func NewValidateCmd(out io.Writer) *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a profile file for missing required fields",
		RunE: func(_ *cobra.Command, _ []string) error {
			profile, err := LoadProfile(profilePath)
			if err != nil {
				return err
			}

			violations := report.ValidateProfile(profile)
			if len(violations) == 0 {
				fmt.Fprintln(out, "profile is valid")
				return nil
			}
			for _, v := range violations {
				fmt.Fprintf(out, "  - %s\n", v)
			}
			return fmt.Errorf("profile has %d validation problem(s)", len(violations))
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "profile.yaml",
		"Path to the profile file (YAML or JSON)")

	return cmd
}
