package main

import (
	"github.com/spf13/cobra"
)

// Options to control the console driver
type Options struct {
	Hops     int  // iterator steps taken by the circularity walk of `demo list`
	NoPrompt bool // never print the shell prompt, even on a terminal
}

var opt = &Options{}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cdll",
	Short: "exercise the circular doubly-linked list and its queue",
	Long: `cdll drives the list and queue containers from the console,
either through canned demos or an interactive shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}
