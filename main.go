package main

import (
	"github.com/mouse-blink/touchall/cmd"
)

func main() {
	cmd.Execute()
}
