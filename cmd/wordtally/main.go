package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// reportError prints err to stderr unless the logger already writes there.
func reportError(err error, stderr io.Writer) {
	if log.StandardLogger().Out != stderr {
		fmt.Fprintf(stderr, "wordtally: %v\n", err)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(err, os.Stderr)
		log.WithError(err).Fatal("cannot execute command")
	}
}
