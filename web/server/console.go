package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// WebLogger implements core.Logger by tagging every line with the render it belongs to
type WebLogger struct {
	renderID string
	out      *log.Logger
}

// NewWebLogger creates a new web logger for a specific render. A nil out
// uses the standard logger.
func NewWebLogger(renderID string, out *log.Logger) core.Logger {
	if out == nil {
		out = log.Default()
	}
	return &WebLogger{renderID: renderID, out: out}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	wl.out.Printf("[render %s] %s", shortID(wl.renderID), message)
}

// shortID keeps log lines readable while staying unique enough to grep for
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
