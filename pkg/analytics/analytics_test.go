package analytics

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestNewWithoutIDIsNoop(t *testing.T) {
	tr := New("", "AW-1/abc")
	if _, ok := tr.(Noop); !ok {
		t.Fatalf("got %T, want Noop", tr)
	}
	if got := render(t, tr.Head()) + render(t, tr.Conversion()); got != "" {
		t.Errorf("noop rendered %q", got)
	}
}

func TestGtagHead(t *testing.T) {
	out := render(t, New("G-TEST123", "").Head())

	if !strings.Contains(out, `src="https://www.googletagmanager.com/gtag/js?id=G-TEST123"`) {
		t.Errorf("missing loader: %s", out)
	}
	if !strings.Contains(out, `gtag('config',"G-TEST123")`) {
		t.Errorf("missing config call: %s", out)
	}
}

func TestGtagConversion(t *testing.T) {
	out := render(t, New("G-1", "AW-17276899773/yi87CI").Conversion())
	if !strings.Contains(out, `send_to:"AW-17276899773/yi87CI"`) {
		t.Errorf("conversion: %s", out)
	}

	if out := render(t, New("G-1", "").Conversion()); out != "" {
		t.Errorf("conversion without target rendered %q", out)
	}
}

func TestGtagEscapesScriptBreakout(t *testing.T) {
	out := render(t, Gtag{ID: "x", SendTo: "</script><script>alert(1)"}.Conversion())
	if strings.Contains(out, "</script><script>") {
		t.Errorf("unescaped script breakout: %s", out)
	}
}
