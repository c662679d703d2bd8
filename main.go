// Package main is the entry point for the repotopdf CLI.
package main

import "github.com/raestrada95/repotopdf/cmd"

func main() {
	cmd.Execute()
}
