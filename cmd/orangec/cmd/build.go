package cmd

import (
	"fmt"
	"os"

	"github.com/orange-lang/orangec/internal/config"
	"github.com/orange-lang/orangec/internal/generator"
	"github.com/orange-lang/orangec/internal/parser"
	"github.com/orange-lang/orangec/internal/symbols"
	"github.com/orange-lang/orangec/internal/validator"
	"github.com/spf13/cobra"
)

var (
	outputFile   string
	projectFile  string
	targetName   string
	buildVerbose bool
)

func init() {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = runBuild

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "out.js", "output JS file")
	rootCmd.Flags().StringVarP(&projectFile, "project", "p", "", "project manifest (YAML) listing sources and output")
	rootCmd.Flags().StringVarP(&targetName, "target", "t", "node", "target runtime (node, browser); recorded only, does not change generator output")
	rootCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "verbose output")
}

func runBuild(_ *cobra.Command, args []string) error {
	sources, output, err := resolveBuildInputs(args)
	if err != nil {
		return err
	}

	table := symbols.NewTable(sources[0])
	fileSources := make(map[string]string, len(sources))

	for _, path := range sources {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		src := string(content)
		fileSources[path] = src

		if buildVerbose {
			fmt.Fprintf(os.Stderr, "parsing %s...\n", path)
		}

		if cerr := parser.Parse(table, src, path); cerr != nil {
			fmt.Fprint(os.Stderr, cerr.Format())
			return fmt.Errorf("parsing failed")
		}
	}

	if cerr := validator.Run(table, fileSources); cerr != nil {
		fmt.Fprint(os.Stderr, cerr.Format())
		return fmt.Errorf("validation failed")
	}

	js := generator.New(table).Generate()

	if err := os.WriteFile(output, []byte(js), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	if buildVerbose {
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", output, len(js))
	} else {
		fmt.Printf("Compiled %d file(s) -> %s\n", len(sources), output)
	}
	return nil
}

// resolveBuildInputs picks the build's sources and output. With --project,
// the manifest's sources and output are used verbatim and any files named
// on the command line are ignored; without it, args is required non-empty
// and the output comes from --output.
func resolveBuildInputs(args []string) (sources []string, output string, err error) {
	if projectFile != "" {
		m, err := config.Load(projectFile)
		if err != nil {
			return nil, "", err
		}
		return m.Sources, m.Output, nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("no source files given; pass files directly or use --project")
	}
	return args, outputFile, nil
}
