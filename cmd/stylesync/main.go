// Package main provides the stylesync CLI: it exports design styles to code
// and keeps every reference in the project in step with renames.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
