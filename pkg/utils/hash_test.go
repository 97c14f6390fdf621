package utils

import "testing"

func TestHashString(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashString("abc"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLeadKey(t *testing.T) {
	a := LeadKey("Ada@Example.com ")
	b := LeadKey("ada@example.com")
	if a != b {
		t.Errorf("keys differ: %s vs %s", a, b)
	}
	if len(a) != 12 {
		t.Errorf("length: got %d, want 12", len(a))
	}
	if a == LeadKey("grace@example.com") {
		t.Error("different emails should not share a key")
	}
}
