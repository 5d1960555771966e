// Lescolors - colour manipulation and analysis utilities
//
// Lescolors explores colour relationships (complementary, adjacent,
// analogous), converts colours to hex, and extracts the dominant colour
// from local or remote images.
//
// Copyright (c) 2026 Anish Panda
// Licensed under the MIT License
package main

import "github.com/Anish177/lescolors/internal/cli"

func main() {
	cli.Execute()
}
