package main

import "github.com/tardyp/esp-am/cmd"

func main() {
	cmd.Execute()
}
