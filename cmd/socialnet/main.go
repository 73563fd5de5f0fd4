package main

import "social-network/cmd"

func main() {
	cmd.Execute()
}
