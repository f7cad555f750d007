package main

import (
	"os"

	"github.com/kupu-app/kupu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
