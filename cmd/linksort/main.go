package main

import "github.com/tychoish/linksort/cmd/linksort/root"

func main() {
	root.Execute()
}
