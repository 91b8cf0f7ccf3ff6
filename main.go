package main

import (
	"fmt"
	"os"

	"github.com/abhinav-rk/studyloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
