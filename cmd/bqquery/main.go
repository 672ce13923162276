// Package main provides the bqquery binary.
package main

import (
	"fmt"
	"os"

	"github.com/zxc72608/bigquery/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
