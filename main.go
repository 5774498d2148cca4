package main

import "github.com/adhillon192/Vue-Portfolio/cmd"

func main() {
	cmd.Execute()
}
