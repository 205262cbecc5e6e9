package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
