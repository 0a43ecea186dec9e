package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/gutter/cmd/gutter"
	"github.com/arthur-debert/gutter/pkg/ui/styles"
)

func main() {
	rootCmd := gutter.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
