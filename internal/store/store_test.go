package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/tuiread/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "tuiread.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 3; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		id, err := st.InsertSession(ctx, model.SessionStats{
			StartedAt:  start,
			EndedAt:    start.Add(time.Minute),
			Source:     "book.txt",
			Tokens:     1000,
			StartIndex: 0,
			EndIndex:   100 * (i + 1),
			WordsShown: 100 * (i + 1),
			StartWPM:   500,
			EndWPM:     500 + 50*i,
			DurationMs: time.Minute.Milliseconds(),
		})
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListSessions(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	if all[2].SessionID != ids[2] || all[2].EndWPM != 600 || all[2].Source != "book.txt" {
		t.Fatalf("unexpected last session %+v", all[2])
	}

	last, err := st.ListSessions(ctx, model.HistoryConfig{Last: 2})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(last) != 2 || last[0].SessionID != ids[1] {
		t.Fatalf("unexpected last sessions %+v", last)
	}

	since := base.Add(90 * time.Minute)
	recent, err := st.ListSessions(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(recent) != 1 || recent[0].SessionID != ids[2] {
		t.Fatalf("unexpected since filter result %+v", recent)
	}
}
