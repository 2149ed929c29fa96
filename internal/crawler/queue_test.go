package crawler

import "testing"

func TestPageQueueOrder(t *testing.T) {
	q := &pageQueue{}
	q.push(ScoredPage{URL: "low", Score: LowScore, Depth: 1})
	q.push(ScoredPage{URL: "deep-high", Score: HighScore, Depth: 3})
	q.push(ScoredPage{URL: "default", Score: DefaultScore, Depth: 0})
	q.push(ScoredPage{URL: "shallow-high", Score: HighScore, Depth: 1})
	q.push(ScoredPage{URL: "medium", Score: MediumScore, Depth: 2})

	want := []string{"shallow-high", "deep-high", "medium", "low", "default"}
	for i, w := range want {
		if q.len() != len(want)-i {
			t.Fatalf("expected queue length %d, got %d", len(want)-i, q.len())
		}
		if got := q.pop().URL; got != w {
			t.Fatalf("pop %d: expected %s, got %s", i, w, got)
		}
	}
}

func TestPageQueueKeepsDuplicates(t *testing.T) {
	q := &pageQueue{}
	q.push(ScoredPage{URL: "https://example.com/about", Score: HighScore, Depth: 1})
	q.push(ScoredPage{URL: "https://example.com/about", Score: HighScore, Depth: 1})
	if q.len() != 2 {
		t.Fatalf("expected 2 queued pages, got %d", q.len())
	}
}
