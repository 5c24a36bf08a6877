package main

import (
	"os"

	"github.com/brightpage/brightpage/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
