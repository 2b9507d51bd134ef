package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"qcert/camp/pkg/camp"
	"qcert/camp/pkg/camp/factory"
	"qcert/camp/pkg/camp/pattern"
	"qcert/camp/pkg/cli"
	"qcert/camp/pkg/telemetry/metrics"
)

var unopFlags struct {
	op      string
	params  []string
	list    bool
	operand string
	metrics bool
}

var unopCmd = &cobra.Command{
	Use:   "unop",
	Short: "Build a unary pattern and print it",
	Long: `Build a punop pattern from an operator name and parameter, apply it to
pit (or penv), and print the canonical rendering.

The parameter is checked against the operator's declared parameter kind:
operators declaring None take no --param, String takes exactly one, and
StringList takes one or more (use --list to force a single-element list).

Examples:
  camp unop --op ACount
  camp unop --op ADot --param name
  camp unop --op ARecProject --param a --param b
  camp unop --op ABrand --param Customer --list`,
	RunE: runUnop,
}

func init() {
	rootCmd.AddCommand(unopCmd)

	unopCmd.Flags().StringVar(&unopFlags.op, "op", "", "unary operator name (required)")
	unopCmd.Flags().StringArrayVarP(&unopFlags.params, "param", "p", nil, "operator parameter (repeatable)")
	unopCmd.Flags().BoolVar(&unopFlags.list, "list", false, "pass the parameters as a string list")
	unopCmd.Flags().StringVar(&unopFlags.operand, "operand", "it", "operand pattern: it, env")
	unopCmd.Flags().BoolVar(&unopFlags.metrics, "metrics", false, "print construction metrics after the result")
	_ = unopCmd.MarkFlagRequired("op")
	_ = unopCmd.RegisterFlagCompletionFunc("op", completeUnaryOperator)
}

// completeUnaryOperator offers unary operator names with their parameter kind.
func completeUnaryOperator(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, info := range pattern.UnaryOperators() {
		if strings.HasPrefix(info.Name, toComplete) {
			names = append(names, info.Name+"\t"+info.Parameter)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// unaryParameter maps command-line parameters to the dynamic parameter shape
// the factory expects.
func unaryParameter(params []string, list bool) any {
	switch {
	case list || len(params) > 1:
		return append([]string(nil), params...)
	case len(params) == 1:
		return params[0]
	default:
		return nil
	}
}

func operandPattern(name string) (pattern.Pattern, error) {
	switch name {
	case "it", "pit":
		return pattern.NewIt(), nil
	case "env", "penv":
		return pattern.NewEnv(), nil
	default:
		return nil, cli.NewConfigError("operand", fmt.Sprintf("unknown operand %q: must be 'it' or 'env'", name))
	}
}

// buildUnary constructs the requested punop through f.
func buildUnary(f *factory.Factory, op string, params []string, list bool, operand string) (camp.Description, error) {
	p, err := operandPattern(operand)
	if err != nil {
		return camp.Description{}, err
	}

	u, err := f.Unary(op, unaryParameter(params, list), p)
	if err != nil {
		return camp.Description{}, err
	}
	return camp.Describe(u), nil
}

func runUnop(cmd *cobra.Command, args []string) error {
	desc, err := buildUnary(env.factory, unopFlags.op, unopFlags.params, unopFlags.list, unopFlags.operand)
	if unopFlags.metrics {
		defer writeMetrics(cmd.ErrOrStderr(), env.registry)
	}
	if err != nil {
		return cli.NewCommandError("unop", err)
	}

	env.logger.Debug("built unary pattern", "operator", unopFlags.op, "render", desc.Render)
	if err := env.formatter.FormatTo(cmd.OutOrStdout(), desc); err != nil {
		return cli.NewCommandError("unop", err)
	}
	return nil
}

// writeMetrics prints the gathered construction metrics in the Prometheus
// text format.
func writeMetrics(w io.Writer, registry *prometheus.Registry) {
	if err := metrics.WriteText(w, registry); err != nil {
		fmt.Fprintln(w, err)
	}
}
