package main

import "extract-wish-url/cmd"

func main() {
	cmd.Execute()
}
