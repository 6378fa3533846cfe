package main

import (
	"os"

	"github.com/moneytrack-dev/moneytrack/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
