package main

import (
	"os"

	"github.com/bistroboard/demogen/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
