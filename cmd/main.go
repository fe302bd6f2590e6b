package main

import "github.com/rlutz/gnetgo/pkg/cmd"

func main() {
	cmd.Execute()
}
