package crawler

import "container/heap"

type ScoredPage struct {
	URL   string
	Score float64
	Depth int
}

// before reports whether p must be crawled before o: higher score first, shallower page on ties.
func (p ScoredPage) before(o ScoredPage) bool {
	if p.Score != o.Score {
		return p.Score > o.Score
	}
	return p.Depth < o.Depth
}

// pageHeap implements heap.Interface. Duplicates are allowed; they are dropped when popped.
type pageHeap []ScoredPage

func (h pageHeap) Len() int           { return len(h) }
func (h pageHeap) Less(i, j int) bool { return h[i].before(h[j]) }
func (h pageHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pageHeap) Push(x any) {
	*h = append(*h, x.(ScoredPage))
}

func (h *pageHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

type pageQueue struct {
	h pageHeap
}

func (q *pageQueue) push(p ScoredPage) {
	heap.Push(&q.h, p)
}

func (q *pageQueue) pop() ScoredPage {
	return heap.Pop(&q.h).(ScoredPage)
}

func (q *pageQueue) len() int {
	return q.h.Len()
}
