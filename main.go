package main

import "github.com/toyfactory/heijunkasim/cmd"

func main() {
	cmd.Execute()
}
