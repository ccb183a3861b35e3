package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, nil).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
