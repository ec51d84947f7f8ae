package main

import "github.com/mcoot/matchday/internal/cli"

func main() {
	cli.Execute()
}
