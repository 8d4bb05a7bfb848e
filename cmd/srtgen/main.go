package main

import (
	"os"

	"github.com/srtgen/srtgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
