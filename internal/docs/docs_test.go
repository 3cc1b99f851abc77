package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "board,keys,selection,storage" {
		t.Fatalf("topics = %q", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get("  Storage ")
	if !ok || !strings.HasPrefix(body, "# Storage") {
		t.Fatalf("Get(Storage) = %q, %v", body, ok)
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("unknown topic should not be found")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("empty topic should not be found")
	}
}
