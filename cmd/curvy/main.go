package main

import (
	"os"

	"github.com/choneface/curvy/cmd/curvy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
