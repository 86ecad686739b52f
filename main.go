package main

import (
	"fmt"
	"os"

	"github.com/GunmeetS/rotate-resize-image/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rri:", err)
		os.Exit(1)
	}
}
