// Command jointpanel organizes rig joints into control panel layouts.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/jointpanel/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
