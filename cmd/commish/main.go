// Package main - commish CLI
//
// Usage:
//
//	go run ./cmd/commish serve
//	go run ./cmd/commish rankings --platform sleeper --league 123456
package main

import (
	"os"

	"github.com/JoshFink/commish/cmd/commish/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
