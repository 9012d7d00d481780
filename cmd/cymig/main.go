package main

import (
	"os"

	"github.com/cymig/cymig/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
