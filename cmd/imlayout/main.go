// Package main provides the imlayout CLI for computing and inspecting
// layout scenes.
//
// Usage:
//
//	imlayout dump [scene...]              Print the computed tree
//	imlayout hash [scene...]              Print structural hashes
//	imlayout render --out dir [scene...]  Paint scenes to PNG
//	imlayout check [scene...]             Decode and build without computing
//
// Scenes are .yaml, .yml or .toml files. Directories are searched for
// scene files, and a trailing /... searches recursively.
package main

import (
	"context"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
