package main

import (
	"os"

	"github.com/thumbert/bust-sub001/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
