package main

import (
	"os"

	"github.com/bnema/gamekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
