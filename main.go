package main

import (
	"os"

	"github.com/thenoetrevino/weekboard/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
