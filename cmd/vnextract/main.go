package main

import (
	"github.com/siherrmann/vnextract/internal/cli"
)

// main runs the vnextract command line
func main() {
	cli.Execute()
}
