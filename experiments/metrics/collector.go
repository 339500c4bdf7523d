package metrics

import "time"

// SearchMetric describes one turn's search.
type SearchMetric struct {
	Iterations int
	TreeNodes  int
	Duration   time.Duration
}

// MoveMetric ties a search to its position in a match.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one finished match.
type GameMetric struct {
	Winner     string
	TotalMoves int
	Duration   time.Duration
}

// Collector accumulates metrics for one search. The search is single
// threaded, so plain counters suffice.
type Collector interface {
	Start()
	AddIteration()
	SetTreeNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	iterations int
	treeNodes  int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.iterations = 0
	c.treeNodes = 0
}

func (c *collector) AddIteration() {
	c.iterations++
}

func (c *collector) SetTreeNodes(n int) {
	c.treeNodes = n
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations: c.iterations,
		TreeNodes:  c.treeNodes,
		Duration:   time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches that do not
// report metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()                 {}
func (dummyCollector) AddIteration()          {}
func (dummyCollector) SetTreeNodes(int)       {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
