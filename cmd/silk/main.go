package main

import "github.com/saucesteals/silk/internal/cli"

func main() {
	cli.Execute()
}
