package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gutter/cmd/gutter"
	"github.com/arthur-debert/gutter/internal/version"
)

func main() {
	rootCmd := gutter.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GUTTER",
		Section: "1",
		Source:  "gutter " + version.Version,
		Manual:  "gutter manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
