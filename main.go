package main

import (
	"os"

	"github.com/abhisek/ventctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
