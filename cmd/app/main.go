package main

import "FinScreen/internal/cli"

func main() {
	cli.Execute()
}
