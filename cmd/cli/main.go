package main

import (
	"fmt"
	"os"

	"github.com/de-tools/care-atlas/pkg/terminal/commands"
	"github.com/de-tools/care-atlas/pkg/terminal/export"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "care-atlas",
		Short: "Procedure cost estimation toolkit",
	}

	reporter := export.NewReporter(os.Stdout)
	rootCmd.AddCommand(commands.NewEstimateCmd(reporter))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
