package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuiread/internal/model"
)

func TestEffectiveWPM(t *testing.T) {
	if got := EffectiveWPM(250, 30_000); got != 500 {
		t.Fatalf("expected 500, got %v", got)
	}
	if got := EffectiveWPM(10, 0); got != 0 {
		t.Fatalf("expected 0 for zero duration, got %v", got)
	}
}

func TestCompletion(t *testing.T) {
	if Completion(5, 10) != 0.5 || Completion(0, 0) != 1 {
		t.Fatalf("unexpected completion values")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 1, 1}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistoryWithWidth(&buf, nil, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions found.") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderHistory(t *testing.T) {
	ended := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	sessions := []model.SessionAggregate{
		{SessionID: 1, EndedAt: ended, Source: "a.txt", Tokens: 100, EndIndex: 50, WordsShown: 50, EndWPM: 500, DurationMs: 10_000},
		{SessionID: 2, EndedAt: ended.Add(time.Hour), Source: "stdin", Tokens: 200, EndIndex: 200, WordsShown: 200, EndWPM: 600, DurationMs: 20_000},
	}
	var buf bytes.Buffer
	if err := RenderHistoryWithWidth(&buf, sessions, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sessions: 2", "Words shown: 250", "Time read: 30s", "Avg WPM: 500.0", "Best WPM: 600.0", "WPM trend: ", "a.txt", "100%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
