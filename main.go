package main

import "github.com/notargets/central2d/cmd"

func main() {
	cmd.Execute()
}
