package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Execute runs tmc with the process arguments and standard streams and
// returns the exit code.
func Execute(ctx context.Context) int {
	return Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	app, err := wireApp(stdin, stdout, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "tmc: %v\n", err)
		return 1
	}

	return app.dispatcher.Run(ctx, args)
}
