// Package main is the entry point for the zcalibrate CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/zcalibrate/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
