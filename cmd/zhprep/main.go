package main

import "zhprep/internal/cli"

func main() {
	cli.Execute()
}
