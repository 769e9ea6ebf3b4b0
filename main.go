package main

import (
	"os"

	"github.com/flarebyte/greeter/cmd/greeter/root"
)

// Allows `go run .` from the repository root; the installable binary lives in
// cmd/greeter.
func main() {
	os.Exit(root.Run(os.Args[1:], os.Stdout, os.Stderr))
}
