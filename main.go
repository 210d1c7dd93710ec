package main

import (
	"os"

	"github.com/pedagogue-ai/pedagogue/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
