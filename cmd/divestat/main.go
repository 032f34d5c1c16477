package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// DIVESTAT CLI — Dive log statistics from a CSV export
// ============================================================================

const version = "0.3.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("divestat failed")
		os.Exit(1)
	}
}
