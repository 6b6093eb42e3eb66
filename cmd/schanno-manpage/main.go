package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/schanno/cmd/schanno"
)

// Writes the schanno(1) page for the root command to standard output.
func main() {
	rootCmd := schanno.NewRootCmd()

	if err := doc.GenMan(rootCmd, schanno.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
