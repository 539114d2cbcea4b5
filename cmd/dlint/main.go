package main

import (
	"github.com/dlint-dev/dlint/internal/cli"
)

func main() {
	cli.Execute()
}
