package main

import "github.com/headgrade/headgrade/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
