package main

import (
	"os"

	"github.com/digitgenius/shopassist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
