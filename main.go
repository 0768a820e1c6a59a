package main

import "github.com/qobs-build/bob/cmd"

func main() {
	cmd.Execute()
}
