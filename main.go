package main

import (
	"os"

	"github.com/alphaquant/academy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
