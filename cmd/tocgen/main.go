package main

import "github.com/dgallion1/tocgen/internal/cli"

func main() {
	cli.Execute()
}
