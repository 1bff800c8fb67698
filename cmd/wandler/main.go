package main

import (
	"os"

	"github.com/msto63/wandler/cmd/wandler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
