//go:build mage

// Package main provides build targets for the ansicards project using Mage.
//
// Usage:
//
//	mage build          Compile the ansicards binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run all tests and print per-package coverage
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install ansicards to GOPATH/bin
//	mage demo           Build and run the terminal demo
//	mage stats          Print Go LOC per package and documentation word counts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "ansicards"
	binaryDir  = "bin"
	cmdDir     = "./cmd/ansicards"
)

// Build compiles the ansicards binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath(), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), binaryPath())
}

// Demo builds the binary and runs the poker deck demo on this terminal.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "demo")
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
