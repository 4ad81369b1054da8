package main

import "update-vendor-files/internal/cli"

func main() {
	cli.Execute()
}
