// Command cmsctl fetches posts, pages and custom image fields from a
// WordPress or ACF-enabled CMS and prints template-ready JSON.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func versionString() string {
	return fmt.Sprintf("cmsctl version %s", version)
}
