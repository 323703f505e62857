package main

import (
	"log/slog"
	"os"

	"github.com/eriklarko/rpn-logic/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
