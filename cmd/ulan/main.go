package main

import "ulan/cmd/ulan/root"

func main() {
	root.Execute()
}
