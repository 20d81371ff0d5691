// Package main provides the msr2ly command, which translates score
// descriptions into LilyPond source.
package main

import (
	"os"

	"github.com/kant/libmusicxml/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
