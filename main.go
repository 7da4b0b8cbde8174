package main

import "winstash/cmd"

func main() {
	cmd.Execute()
}
