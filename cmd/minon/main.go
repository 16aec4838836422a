package main

import "github.com/oy3o/minon/cmd/minon/cmd"

func main() {
	cmd.Execute()
}
