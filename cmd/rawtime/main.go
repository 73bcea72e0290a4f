package main

import (
	"os"

	"github.com/msto63/rawtime/cmd/rawtime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
