package main

import (
	"os"

	"github.com/smashedpumpkin/csmake/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
