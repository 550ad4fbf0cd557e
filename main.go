package main

import "avsketch/cmd"

func main() {
	cmd.Execute()
}
