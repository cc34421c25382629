package main

import (
	"os"

	"github.com/medrota/rotagap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
