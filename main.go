package main

import "github.com/naka-gawa/github-annual-review/cmd"

func main() {
	cmd.Execute()
}
