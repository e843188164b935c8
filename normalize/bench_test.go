// SPDX-License-Identifier: MIT

package normalize_test

import (
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/isopsephy/alphabet"
	"github.com/katalvlaran/isopsephy/logger"
	"github.com/katalvlaran/isopsephy/normalize"
)

// BenchmarkNormalize normalizes a polytonic Greek text.
func BenchmarkNormalize(b *testing.B) {
	logger.SetOutput(io.Discard)
	n, err := normalize.New(alphabet.Greek())
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Repeat("Ἐν ἀρχῇ ἦν ὁ λόγος, καὶ ὁ λόγος ἦν πρὸς τὸν θεόν. ", 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Normalize(text)
	}
}
