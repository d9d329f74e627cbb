package main

import "mindfulreader/cmd/mindful/command"

func main() {
	command.Execute()
}
