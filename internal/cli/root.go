// Package cli wires the command-line interface with Cobra.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dumpmigrate",
		Short: "Migrate SQL dump files into MongoDB collections",
		Long: `dumpmigrate parses textual SQL dump files (INSERT INTO ... VALUES ...)
and writes the extracted rows into MongoDB as idempotent batched upserts.
No live relational database is involved; the dumps are read as plain text.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewMigrateCmd())
	rootCmd.AddCommand(NewClearCmd())

	return rootCmd
}
