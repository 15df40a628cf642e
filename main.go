package main

import "github.com/writecontrol/writecontrol/cmd"

func main() {
	cmd.Execute()
}
