package cmd

import (
	"fmt"
	"os"

	"github.com/orange-lang/orangec/internal/lexer"
	"github.com/orange-lang/orangec/internal/preprocess"
	"github.com/spf13/cobra"
)

var tokensRaw bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream for a source file",
	Long: `tokens lexes a single file and prints one token per line. By
default the preprocessor passes (comment stripping, array-suffix
coalescing) run first, the same as a real build; --raw skips them and
shows the lexer's output untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensRaw, "raw", false, "skip preprocessing")
}

func runTokens(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	toks := lexer.New(string(content), args[0]).Lex()
	if !tokensRaw {
		toks = preprocess.Process(toks)
	}

	for _, t := range toks {
		fmt.Println(t.String())
	}
	return nil
}
