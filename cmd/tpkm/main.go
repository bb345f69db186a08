package main

import (
	"fmt"
	"os"

	"github.com/Doner357/TacoPKM-CLI/cmd/tpkm/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
