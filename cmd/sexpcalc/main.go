package main

import (
	"github.com/mattn/sexpcalc/cmd/sexpcalc/cmd"
)

func main() {
	cmd.Execute()
}
