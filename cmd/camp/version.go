package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"qcert/camp/pkg/camp/ast"
	"qcert/camp/pkg/camp/pattern"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "0.1.0"
	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"
	// BuildDate is the build timestamp (set by build flags)
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information: the build, the number of node kinds, and the
sizes of the unary and binary operator tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "camp %s\n", Version)
		fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Node Kinds: %d\n", len(ast.Kinds()))
		fmt.Fprintf(out, "Operators: %d unary, %d binary\n",
			len(pattern.UnaryOperators()), len(pattern.BinaryOperators()))
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
