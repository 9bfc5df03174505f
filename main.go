package main

import "painterbook/cmd"

func main() {
	cmd.Execute()
}
