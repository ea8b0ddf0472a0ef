package main

import (
	"os"

	"github.com/jwulff/antnotes/internal/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		output.NewFormatter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
