// Package main provides the entry point for the realty CLI.
package main

import (
	"fmt"
	"os"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
