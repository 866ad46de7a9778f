package main

import (
	"os"

	"github.com/critcli/crit/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
