package main

import "scdb-loader/cmd"

func main() {
	cmd.Execute()
}
