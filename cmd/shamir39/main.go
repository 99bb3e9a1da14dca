// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"os"

	"github.com/complex-gh/shamir39_go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
