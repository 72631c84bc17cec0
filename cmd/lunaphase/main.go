package main

import (
	"os"

	"lunaphase/cmd/lunaphase/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
