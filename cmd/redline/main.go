package main

import (
	"os"

	"github.com/quillworks/redline/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
