// Command orangec compiles Orange source files to JavaScript.
package main

import (
	"fmt"
	"os"

	"github.com/orange-lang/orangec/cmd/orangec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
