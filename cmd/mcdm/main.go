// Command mcdm weights criteria with CRITIC and ranks alternatives with
// TOPSIS from YAML, JSON, TOML or CSV decision matrices.
package main

import (
	"os"

	"github.com/katalvlaran/mcdm/cmd/mcdm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
