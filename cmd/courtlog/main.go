package main

import "github.com/courtlog/courtlog/internal/cli"

func main() {
	cli.Execute()
}
