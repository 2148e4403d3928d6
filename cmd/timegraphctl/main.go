// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/katalvlaran/timegraph/cmd/timegraphctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
