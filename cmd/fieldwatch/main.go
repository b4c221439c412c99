package main

import (
	"os"

	"github.com/mgriggs/fieldwatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
