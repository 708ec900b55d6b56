package main

import (
	"fmt"
	"os"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/runtime/terminal"
	"github.com/cosmo-tools/astro-atlas/pkg/services/report"
)

func main() {
	lib, err := content.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Generator: report.NewGenerator(lib),
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
