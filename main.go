package main

import (
	"context"
	"os"

	"github.com/bogun-lab/facildash/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
