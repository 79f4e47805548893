package main

import "github.com/tamasfe/scaffold/cmd/scaffold/commands"

func main() {
	commands.Execute()
}
