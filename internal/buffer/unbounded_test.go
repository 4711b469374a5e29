package buffer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestUnboundedKeepsOrder(t *testing.T) {
	in, out := Unbounded[int](4, 1000, nil)
	for i := 0; i < 100; i++ {
		in <- i
	}
	close(in)

	want := 0
	for v := range out {
		if v != want {
			t.Fatalf("expected %d, got %d", want, v)
		}
		want++
	}
	if want != 100 {
		t.Errorf("expected 100 items, got %d", want)
	}
}

func TestUnboundedDropsOldest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	in, out := Unbounded[int](2, 2, logger)

	// Nothing reads until input is closed, so once the output channel is
	// full every further item pushes the oldest queued one out.
	for i := 0; i < 100; i++ {
		in <- i
	}
	close(in)

	var got []int
	for v := range out {
		got = append(got, v)
	}
	if len(got) >= 100 {
		t.Fatalf("expected drops, got all %d items", len(got))
	}
	if got[len(got)-1] != 99 {
		t.Errorf("newest item should survive, got %v", got)
	}
	if !strings.Contains(buf.String(), "dropping oldest item") {
		t.Errorf("expected a drop warning, got %q", buf.String())
	}
}
