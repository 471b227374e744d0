package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/padchain/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(nil).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
