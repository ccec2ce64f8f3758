package main

import "microsh.dev/microsh/cmd"

func main() {
	cmd.Execute()
}
