package main

import (
	"os"

	"github.com/grexie/labelnoise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
