//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test.
func (Test) All() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs every test under the race detector. The table engine's
// concurrency tests are only meaningful here.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "-count=1", "./...")
}

// Cover runs every test and prints per-package coverage.
func (Test) Cover() error {
	return sh.RunV(binGo, "test", "-cover", "./...")
}
