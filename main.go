package main

import "tweety-backend/cmd"

func main() {
	cmd.Run()
}
