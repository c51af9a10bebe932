// Command grouper resolves group identities from a SQLite store.
package main

import (
	"fmt"
	"os"

	"github.com/seafloor/grouper/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
