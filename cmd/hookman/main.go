package main

import (
	"os"

	"github.com/mindriot101/hookman/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
