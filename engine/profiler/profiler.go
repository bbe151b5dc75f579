// Package profiler times named scopes into a fixed-size ring and reports
// runtime figures for debug panels.
package profiler

import (
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
)

type sample struct {
	scope int
	dur   time.Duration
}

// Profiler is safe for concurrent use.
type Profiler struct {
	mu    sync.Mutex
	ring  []sample
	write uint64

	// string interner
	names []string
	index map[string]int
}

// New keeps the last capacity samples.
// Example: profiler.New(1 << 10) // ~1K scope samples
func New(capacity int) *Profiler {
	if capacity <= 0 {
		capacity = 1 << 10
	}
	return &Profiler{ring: make([]sample, capacity), index: map[string]int{}}
}

// Start begins a scope and returns an end func to be deferred.
func (p *Profiler) Start(name string) func() {
	start := time.Now()
	return func() { p.Record(name, time.Since(start)) }
}

func (p *Profiler) Record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ring[p.write%uint64(len(p.ring))] = sample{scope: p.intern(name), dur: d}
	p.write++
}

func (p *Profiler) intern(name string) int {
	if id, ok := p.index[name]; ok {
		return id
	}
	id := len(p.names)
	p.index[name] = id
	p.names = append(p.names, name)
	return id
}

// Summary aggregates the samples of one scope still held in the ring.
type Summary struct {
	Name  string
	Count int
	Mean  time.Duration
	Max   time.Duration
}

// Summaries returns one entry per scope with samples in the ring, sorted by
// name.
func (p *Profiler) Summaries() []Summary {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := min(p.write, uint64(len(p.ring)))
	byScope := map[int]*Summary{}
	total := map[int]time.Duration{}
	for _, s := range p.ring[:n] {
		sum, ok := byScope[s.scope]
		if !ok {
			sum = &Summary{Name: p.names[s.scope]}
			byScope[s.scope] = sum
		}
		sum.Count++
		sum.Max = max(sum.Max, s.dur)
		total[s.scope] += s.dur
	}

	out := make([]Summary, 0, len(byScope))
	for id, sum := range byScope {
		sum.Mean = total[id] / time.Duration(sum.Count)
		out = append(out, *sum)
	}
	slices.SortFunc(out, func(a, b Summary) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}

func NumCPU() int {
	return runtime.NumCPU()
}
