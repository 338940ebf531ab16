// Package main is the entry point for the gradtrack CLI tool.
package main

import (
	"os"

	"github.com/good-yellow-bee/gradtrack/cmd/gradtrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
