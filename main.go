package main

import "github.com/kozaktomas/content-planner/cmd"

func main() {
	cmd.Execute()
}
