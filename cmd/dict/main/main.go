package main

import (
	"context"
	"os"

	"github.com/arthur-debert/dict/cmd/dict"
)

func main() {
	os.Exit(dict.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
