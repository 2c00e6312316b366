package highlight

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeMatches_WireFormat(t *testing.T) {
	matches := []MatchPosition{
		{
			PageNumber:   2,
			BoundingRect: Rect{X1: 1, Y1: 2, X2: 3, Y2: 4, Width: 600, Height: 800},
			Rects:        []Rect{{X1: 1, Y1: 2, X2: 3, Y2: 4, Width: 600, Height: 800}},
		},
	}

	var buf bytes.Buffer
	if err := EncodeMatches(&buf, matches); err != nil {
		t.Fatalf("EncodeMatches() error = %v", err)
	}

	out := buf.String()
	for _, field := range []string{`"page_number":2`, `"bounding_rect"`, `"rects"`, `"x1":1`, `"y2":4`} {
		if !strings.Contains(out, field) {
			t.Errorf("encoded output missing %s: %s", field, out)
		}
	}

	decoded, err := DecodeMatches(strings.NewReader(out))
	if err != nil {
		t.Fatalf("DecodeMatches() error = %v", err)
	}
	if len(decoded) != 1 || decoded[0].PageNumber != 2 || decoded[0].BoundingRect != matches[0].BoundingRect {
		t.Errorf("decoded = %+v, want %+v", decoded, matches)
	}
}

func TestEncodeMatches_NilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeMatches(&buf, nil); err != nil {
		t.Fatalf("EncodeMatches(nil) error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("EncodeMatches(nil) wrote %q, want %q", got, "[]")
	}
}
