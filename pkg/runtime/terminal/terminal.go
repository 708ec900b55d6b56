package terminal

import (
	"io"
	"os"

	"github.com/cosmo-tools/astro-atlas/pkg/runtime/terminal/commands"
	"github.com/cosmo-tools/astro-atlas/pkg/runtime/terminal/export"
	"github.com/cosmo-tools/astro-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	generator *report.Generator
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Generator *report.Generator
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		generator: opts.Generator,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "astro-atlas",
		Short: "Personalized astrology report engine",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.generator, cli.reporter))
	cmd.AddCommand(commands.NewValidateCmd(cli.reporter.Writer()))
	cmd.AddCommand(commands.NewCacheKeyCmd(cli.reporter.Writer()))
	cmd.AddCommand(commands.NewDomainsCmd(cli.reporter.Writer()))

	return cmd
}
