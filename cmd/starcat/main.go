// Command starcat categorises a GitHub user's starred repositories with an
// LLM and writes the merged taxonomy as JSON and HTML artifacts.
package main

import (
	"os"

	"github.com/custodia-labs/starcat-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
