// SPDX-License-Identifier: MIT

// Package logger holds the loggers shared by the isopsephy packages.
package logger

import (
	"io"
	"log"
	"os"
)

// ProgressLogger logs one-time steps such as alphabet registry construction.
var ProgressLogger = log.New(os.Stderr, "isopsephy.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal event, like characters
// removed while normalizing text.
var WarningLogger = log.New(os.Stderr, "isopsephy.warning: ", log.Lmsgprefix)

// SetOutput redirects both loggers, typically to io.Discard in tests.
func SetOutput(w io.Writer) {
	ProgressLogger.SetOutput(w)
	WarningLogger.SetOutput(w)
}
