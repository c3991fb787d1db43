// Package main provides the ansicards CLI.
package main

import (
	"log"

	"github.com/mesh-intelligence/ansicards/internal/cli"
)

func main() {
	log.SetPrefix("[ANSICARDS] ")
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	cli.Execute()
}
