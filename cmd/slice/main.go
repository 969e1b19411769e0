package main

import "slice/cmd/slice/cmd"

func main() {
	cmd.Execute()
}
