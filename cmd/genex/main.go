package main

import "github.com/emiliopalmerini/genex/internal/cli"

func main() {
	cli.Execute()
}
