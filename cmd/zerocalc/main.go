// Command zerocalc evaluates calculator expressions given as arguments or
// read line by line from a file or standard input.
package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errSyntax) {
			logrus.Error(err)
		}
		os.Exit(1)
	}
}
