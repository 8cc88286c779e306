package main

import "pet-registry/internal/cli"

func main() {
	cli.Execute()
}
