package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestJSONLoggerWrite(t *testing.T) {
	var buf bytes.Buffer
	l := New("landing-test", &buf)
	l.now = func() time.Time { return time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC) }

	lg := log.New(l, "", 0)
	lg.Printf("Processing consultation for %s", "abc123")

	var entry map[string]string
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}

	want := map[string]string{
		"timestamp": "2024-02-10T09:30:00Z",
		"level":     "info",
		"instance":  "landing-test",
		"message":   "Processing consultation for abc123",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %q, want %q", k, entry[k], v)
		}
	}
}

func TestJSONLoggerErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := log.New(New("x", &buf), "", 0)
	lg.Printf("Error delivering consultation: %v", "boom")

	var entry map[string]string
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level: got %q, want error", entry["level"])
	}
}

func TestInstallRoutesGinOutput(t *testing.T) {
	prevOut, prevFlags := log.Writer(), log.Flags()
	prevGin, prevGinErr := gin.DefaultWriter, gin.DefaultErrorWriter
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		gin.DefaultWriter, gin.DefaultErrorWriter = prevGin, prevGinErr
	})

	var buf bytes.Buffer
	New("landing-test", &buf).Install()

	log.Printf("Server starting on port %s", "8080")
	fmt.Fprintf(gin.DefaultWriter, "[GIN] 2024/02/10 - 09:30:00 | 200 | 1ms | 127.0.0.1 | GET \"/health\"\n")
	fmt.Fprintf(gin.DefaultErrorWriter, "[GIN-debug] [ERROR] listen tcp :8080: bind: address already in use\n")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got %d, want 3:\n%s", len(lines), buf.String())
	}

	wantLevels := []string{"info", "info", "error"}
	for i, line := range lines {
		var entry map[string]string
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d not JSON %q: %v", i, line, err)
		}
		if entry["level"] != wantLevels[i] {
			t.Errorf("line %d level: got %q, want %q", i, entry["level"], wantLevels[i])
		}
		if entry["instance"] != "landing-test" {
			t.Errorf("line %d instance: got %q", i, entry["instance"])
		}
	}
}
