package main

import (
	"os"

	"github.com/Norgate-AV/winkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
