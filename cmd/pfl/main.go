package main

import (
	"os"

	"github.com/pfl-lang/pfl/cmd/pfl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
