package main

import (
	"os"

	"github.com/jiahui/grampoint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
