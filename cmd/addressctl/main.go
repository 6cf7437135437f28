package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(defaultLoader).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
