//go:build mage

// Package main provides build targets for the queryboard project using Mage.
//
// Usage:
//
//	mage build    Compile queryboard binary to bin/
//	mage test     Run all tests
//	mage testUnit Run only unit tests (exclude tests/)
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install queryboard to GOPATH/bin
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "queryboard"
	binaryDir  = "bin"
	cmdDir     = "./cmd/queryboard"
)

// Build compiles the queryboard binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestUnit runs only unit tests, excluding the tests/ directory.
func TestUnit() error {
	pkgs, err := sh.Output("go", "list", "./...")
	if err != nil {
		return err
	}
	var unit []string
	for _, pkg := range strings.Split(pkgs, "\n") {
		if pkg == "" || strings.Contains(pkg, "/tests/") {
			continue
		}
		unit = append(unit, pkg)
	}
	args := append([]string{"test"}, unit...)
	return sh.RunV("go", args...)
}

// TestIntegration runs the integration suite, building the binary first.
func TestIntegration() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "./tests/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install installs queryboard to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
