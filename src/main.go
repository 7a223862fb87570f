package main

import (
	"github.com/nvmup/nvmup/src/cmd"
)

func main() {
	cmd.Execute()
}
