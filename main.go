package main

import "github.com/davebream/again/cmd"

func main() {
	cmd.Execute()
}
