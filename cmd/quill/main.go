package main

import (
	"github.com/quillforge/quill/internal/cli"
)

func main() {
	// Execute the root command
	cli.Execute()
}
