package main

import "github.com/xll-gen/bin2c/cmd"

// main is the entry point of the bin2c CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
