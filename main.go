// Wayfind resolves logical, context-dependent references into concrete
// relative or absolute URLs for a site that may be served from a
// sub-directory, with configurable site and admin hostnames, versioned API
// schemes, and optional SSL.
package main

import (
	"fmt"
	"os"

	"github.com/quillcms/wayfind/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
