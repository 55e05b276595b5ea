package main

import "slicer-profiles/internal/cli"

func main() {
	cli.Execute()
}
