// Package main provides the inkline CLI application entry point.
package main

import "inkline/cmd/inkline/internal/cli"

func main() {
	cli.NewApp().Execute()
}
