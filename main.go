package main

import "github.com/josephlewis42/fesh/cmd"

func main() {
	cmd.Execute()
}
