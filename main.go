package main

import (
	"os"

	"suite/pkg/cli"
	"suite/pkg/ui"
)

func main() {
	os.Exit(cli.Execute(cli.DefaultEnv(ui.Run), os.Args[1:]))
}
