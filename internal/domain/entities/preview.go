package entities

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"
)

// DefaultPreviewLimit is the number of findings listed before "... N more".
const DefaultPreviewLimit = 5

// Preview is a capped sample of a findings list.
type Preview struct {
	Items []string
	// Hidden is the number of findings left out of Items.
	Hidden int
}

// Previewer draws capped samples of findings lists. The sample is a uniform random
// selection without replacement, so repeated runs do not keep hiding the same subset.
// It is safe for concurrent use.
type Previewer struct {
	limit int
	mu    sync.Mutex
	rng   *rand.Rand
}

// NewPreviewer creates a previewer. A zero seed picks a time-based one.
func NewPreviewer(limit int, seed uint64) *Previewer {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // not security sensitive
	}
	return &Previewer{
		limit: limit,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // sampling only
	}
}

// Sample returns at most limit items of findings. When nothing is hidden the
// findings are returned in their original order.
func (p *Previewer) Sample(findings []string) Preview {
	if len(findings) <= p.limit {
		return Preview{Items: slices.Clone(findings)}
	}

	shuffled := slices.Clone(findings)
	p.mu.Lock()
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	p.mu.Unlock()

	return Preview{
		Items:  shuffled[:p.limit],
		Hidden: len(findings) - p.limit,
	}
}
