package main

import "cube-netter/internal/commands"

func main() {
	commands.Execute()
}
