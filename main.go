package main

import (
	"os"

	"github.com/feedrank/feedrank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
