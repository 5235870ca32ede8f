package main

import (
	"fmt"
	"os"

	"github.com/t-8ch/burp/cmd/categories"
	"github.com/t-8ch/burp/cmd/root"
	"github.com/t-8ch/burp/internal/config"
)

func init() {
	// Environment first, so BURP_* variables affect configuration.
	config.LoadEnv()

	root.Init()
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
