package main

import (
	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/cli"
)

func main() {
	cli.Execute()
}
