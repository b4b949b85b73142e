package main

import (
	"fmt"
	"os"

	"github.com/stepmate/stepmate/internal/cmd"
	"github.com/stepmate/stepmate/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.IsUserFacing(err) {
			fmt.Fprintln(os.Stderr, err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "stepmate: %v\n", err)
		}
		os.Exit(1)
	}
}
