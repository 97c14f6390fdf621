package logger

import (
	"encoding/json"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// JSONLogger turns each line written by the standard logger and by gin
// into a JSON object.
type JSONLogger struct {
	Instance string
	Out      io.Writer
	now      func() time.Time
}

// New returns a JSONLogger writing to out.
func New(instance string, out io.Writer) *JSONLogger {
	return &JSONLogger{Instance: instance, Out: out, now: time.Now}
}

// Install routes the standard logger and gin's debug, request and error
// output through l. Call it before the gin engine is created.
func (l *JSONLogger) Install() {
	log.SetFlags(0)
	log.SetOutput(l)
	gin.DefaultWriter = l
	gin.DefaultErrorWriter = l
}

func (l *JSONLogger) Write(p []byte) (n int, err error) {
	message := strings.TrimRight(string(p), "\n")

	now := time.Now
	if l.now != nil {
		now = l.now
	}

	logEntry := map[string]interface{}{
		"timestamp": now().UTC().Format(time.RFC3339),
		"level":     level(message),
		"instance":  l.Instance,
		"message":   message,
	}

	jsonBytes, err := json.Marshal(logEntry)
	if err != nil {
		return 0, err
	}

	if _, err := l.Out.Write(append(jsonBytes, '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Log lines follow the "Error ...: %v" convention for failures.
func level(message string) string {
	if strings.HasPrefix(message, "Error") || strings.HasPrefix(message, "[GIN-debug] [ERROR]") {
		return "error"
	}
	return "info"
}
