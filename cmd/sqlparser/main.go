// Package main is the sqlparser command.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlparser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
