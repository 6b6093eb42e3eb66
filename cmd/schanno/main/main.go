package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/schanno/cmd/schanno"
	"github.com/arthur-debert/schanno/pkg/output/styles"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := schanno.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *schanno.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	return 0
}
