// Package main provides the directory CLI.
package main

import "github.com/mesh-intelligence/directory/internal/cli"

func main() {
	cli.Execute()
}
