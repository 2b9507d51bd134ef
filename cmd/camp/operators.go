package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qcert/camp/pkg/camp/pattern"
	"qcert/camp/pkg/cli"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List pattern operators",
	Long: `List the unary pattern operators with their declared parameter kinds,
followed by the binary pattern operators.

Examples:
  # Text table
  camp operators

  # JSON for tooling
  camp operators --format json`,
	RunE: listOperators,
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}

// operatorTable is the JSON shape of the operators command.
type operatorTable struct {
	Unary  []pattern.UnaryOperatorInfo `json:"unary"`
	Binary []string                    `json:"binary"`
}

func buildOperatorTable() operatorTable {
	table := operatorTable{Unary: pattern.UnaryOperators()}
	for _, op := range pattern.BinaryOperators() {
		table.Binary = append(table.Binary, op.String())
	}
	return table
}

// operatorLines renders the table as text rows.
func operatorLines(table operatorTable) []string {
	lines := []string{"UNARY OPERATOR   PARAMETER"}
	for _, info := range table.Unary {
		lines = append(lines, fmt.Sprintf("%-16s %s", info.Name, info.Parameter))
	}
	lines = append(lines, "", "BINARY OPERATOR")
	lines = append(lines, table.Binary...)
	return lines
}

func listOperators(cmd *cobra.Command, args []string) error {
	table := buildOperatorTable()

	var out interface{} = operatorLines(table)
	if _, ok := env.formatter.(*cli.JSONFormatter); ok {
		out = table
	}
	if err := env.formatter.FormatTo(cmd.OutOrStdout(), out); err != nil {
		return cli.NewCommandError("operators", err)
	}
	return nil
}
