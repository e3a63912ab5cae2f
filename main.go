package main

import "github.com/Justype/condorkit/cmd"

func main() {
	cmd.Execute()
}
