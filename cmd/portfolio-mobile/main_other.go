//go:build !android

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "portfolio-mobile runs on Android: gomobile build -target=android ./cmd/portfolio-mobile")
	os.Exit(2)
}
