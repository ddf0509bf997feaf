package main

import "github.com/endorses/bsdmon/cmd"

func main() {
	cmd.Execute()
}
