package main

import (
	"os"

	"github.com/nugate/nugate/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
