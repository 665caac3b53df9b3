package main

import (
	"os"

	"github.com/journeyscribe/journeyscribe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
