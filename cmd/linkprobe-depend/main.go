// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/linkprobe/linkprobe/lib/arith"
)

func main() {
	os.Exit(run())
}

func run() int {
	if arith.Add(2, 3) != 5 {
		fmt.Println("fail")
		return 1
	}

	if arith.Add(4, 5) != 9 {
		fmt.Println("fail")
		return 1
	}

	return 0
}
