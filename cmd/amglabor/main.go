package main

import (
	"os"

	"github.com/cryback/amglabor/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
