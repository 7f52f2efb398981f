package main

import (
	"os"

	"github.com/Mallqui258/Automatizacion2/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
