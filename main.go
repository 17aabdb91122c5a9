package main

import "diff-analyzer/cmd"

func main() {
	cmd.Execute()
}
