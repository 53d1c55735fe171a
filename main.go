package main

import "github.com/radikecosa/postkit/cmd"

func main() {
	cmd.Execute()
}
