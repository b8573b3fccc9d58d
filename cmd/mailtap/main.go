package main

import (
	"github.com/pixelvide/mailtap/pkg/root"

	_ "github.com/pixelvide/mailtap/pkg/console" // Register commands
)

func main() {
	root.Execute()
}
