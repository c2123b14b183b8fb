// Package should holds cleanup helpers for deferred calls whose failure is
// worth logging but not worth returning.
package should

import (
	"io"

	"github.com/amp-labs/amp-query/logger"
)

// Close closes closer and logs msg at warn level if that fails.
//
//	defer should.Close(f, "closing input")
func Close(closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get().Warn(msg, "error", err)
	}
}
