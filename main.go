package main

import (
	"os"

	"github.com/thenoetrevino/todo/internal/launcher"
)

func main() {
	os.Exit(launcher.Launch(os.Args[1:]))
}
