package main

import "github.com/eng618/bobsvg/cmd"

func main() {
	cmd.Execute()
}
