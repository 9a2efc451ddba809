package main

import "factcloud/internal/cli"

func main() {
	cli.Execute()
}
