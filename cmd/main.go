package main

import cmd "github.com/kerbaras/moviebox/cmd/moviebox"

func main() {
	cmd.Execute()
}
