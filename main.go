package main

import (
	"os"

	"github.com/molembed/molembed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
