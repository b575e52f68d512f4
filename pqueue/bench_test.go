package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/solvekit/solvekit/pqueue"
)

// BenchmarkQueue_PushPop measures a full push-then-drain cycle over N random ints.
func BenchmarkQueue_PushPop(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))
	values := make([]int, N)
	for i := range values {
		values[i] = r.Intn(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New[int](pqueue.WithCapacity(N))
		for _, v := range values {
			q.Push(v)
		}
		for !q.Empty() {
			_, _ = q.Pop()
		}
	}
}

// BenchmarkQueue_Composite measures comparator-based (vertex, dist) entries,
// the workload shape produced by Dijkstra and A*.
func BenchmarkQueue_Composite(b *testing.B) {
	type entry struct {
		vertex int
		dist   float64
	}
	const N = 10000
	r := rand.New(rand.NewSource(7))
	entries := make([]entry, N)
	for i := range entries {
		entries[i] = entry{vertex: i, dist: r.Float64() * 1000}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.NewFunc(func(a, b entry) bool { return a.dist < b.dist }, pqueue.WithCapacity(N))
		for _, e := range entries {
			q.Push(e)
		}
		for !q.Empty() {
			_, _ = q.Pop()
		}
	}
}
