package commands

import (
	"fmt"
	"io"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

// NewDomainsCmd builds the `domains` subcommand.
func NewDomainsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the life areas every report covers",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, d := range domain.Domains {
				fmt.Fprintln(out, d)
			}
			return nil
		},
	}
}
