package main

import (
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/taskgate/internal/conditions"
)

func main() {
	if err := conditions.RegisterDefaults(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to register conditions: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
