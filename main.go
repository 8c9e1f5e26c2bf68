package main

import (
	"os"

	"github.com/bilingui/skillrings/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
