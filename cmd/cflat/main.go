// Package main is the entry point for the cflat interpreter.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jrmarcusau/cflat"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cflat [path]",
	Short:        "Run a cflat program",
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(*cflat.UsageError); ok {
			fmt.Println("Usage: cflat [path]")
			os.Exit(64)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return &cflat.UsageError{Message: "Usage: cflat [path]"}
	}
	path := "./cflatexe/main.cflat"
	if len(args) == 1 {
		path = args[0]
	}
	stdin := bufio.NewReader(os.Stdin)
	return cflat.RunFile(path, stdin, os.Stdout, os.Stderr)
}
