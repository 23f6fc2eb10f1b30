// pmemview - Persistent-Memory Pool Inspection Tool
//
// pmemview reads persistent-memory pool files and prints their headers,
// checksums, and BTT layout in a human-readable form.
package main

import (
	"os"

	"github.com/pmemtools/pmemview/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
