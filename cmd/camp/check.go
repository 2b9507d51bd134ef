package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qcert/camp/pkg/camp"
	"qcert/camp/pkg/camp/pattern"
	"qcert/camp/pkg/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the pattern operator tables",
	Long: `Verify that every unary operator has a name, a unique name, and one of the
three legal parameter kinds (None, String, StringList).

A failure here means the operator table is corrupted; every punop construction
using a broken entry would report an invalid-state error.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := camp.CheckOperators(); err != nil {
		env.logger.Error("operator table check failed", "error", err)
		return cli.NewCommandError("check", err)
	}

	msg := fmt.Sprintf("operator tables OK (%d unary, %d binary)",
		len(pattern.UnaryOperators()), len(pattern.BinaryOperators()))
	return env.formatter.FormatTo(cmd.OutOrStdout(), msg)
}
