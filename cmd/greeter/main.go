package main

import (
	"os"

	"github.com/flarebyte/greeter/cmd/greeter/root"
)

func main() {
	os.Exit(root.Run(os.Args[1:], os.Stdout, os.Stderr))
}
