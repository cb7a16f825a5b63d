// Command tomlcheck validates TOML files and inspects parsed values from
// the command line.
package main

import (
	"os"

	"roseh.moe/pkg/toml/cmd/tomlcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
