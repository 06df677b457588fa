package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "orangec",
	Short: "Orange-to-JavaScript compiler",
	Long: `orangec compiles the Orange language (modules, structs, enums,
functions, and a JavaScript-shaped expression language) straight to plain
JavaScript. There is no intermediate bytecode or VM: every build runs the
lexer, preprocessor, parser, validator, and generator once per invocation
and writes out one JS file.

Running orangec with no subcommand builds the given source files (or a
--project manifest) directly:

  orangec main.orange lib.orange -o out.js
  orangec --project orange.yaml`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
