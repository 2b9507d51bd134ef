// Package cli provides output formatting and error types shared by the camp
// subcommands.
//
//	formatter := cli.NewFormatter(cli.FormatJSON)
//	if err := formatter.FormatTo(os.Stdout, result); err != nil {
//	    return cli.NewCommandError("operators", err)
//	}
package cli
