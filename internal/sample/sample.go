// Package sample generates workloads for demos and manual testing.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/fentz26/jobsummary/internal/models"
	"github.com/google/uuid"
)

// Generator builds sample workloads from a seeded source.
type Generator struct {
	rng *rand.Rand
	// MaxCount bounds every generated count (exclusive).
	MaxCount int
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), MaxCount: 10}
}

func (g *Generator) count() int {
	if g.MaxCount <= 0 {
		return 0
	}
	return g.rng.Intn(g.MaxCount)
}

// Leaf returns a service or batch workload with allocation counts.
func (g *Generator) Leaf() models.Workload {
	id := uuid.New().String()
	jobType := "service"
	if g.rng.Intn(2) == 0 {
		jobType = "batch"
	}
	return models.Workload{
		ID:             id,
		Name:           fmt.Sprintf("%s-%s", jobType, id[:8]),
		Type:           jobType,
		QueuedAllocs:   g.count(),
		StartingAllocs: g.count(),
		RunningAllocs:  g.count(),
		CompleteAllocs: g.count(),
		FailedAllocs:   g.count(),
		LostAllocs:     g.count(),
	}
}

// Periodic returns a periodic parent with children counts.
func (g *Generator) Periodic() models.Workload {
	id := uuid.New().String()
	return models.Workload{
		ID:              id,
		Name:            "periodic-" + id[:8],
		Type:            "batch",
		Periodic:        true,
		HasChildren:     true,
		PendingChildren: g.count(),
		RunningChildren: g.count(),
		DeadChildren:    g.count(),
	}
}

// Parameterized returns a parameterized parent with children counts.
func (g *Generator) Parameterized() models.Workload {
	w := g.Periodic()
	w.Name = "parameterized-" + w.ID[:8]
	w.Periodic = false
	w.Parameterized = true
	return w
}

// Mix returns n workloads, roughly one parent for every two leaves.
func (g *Generator) Mix(n int) []models.Workload {
	out := make([]models.Workload, 0, n)
	for i := 0; i < n; i++ {
		switch i % 3 {
		case 2:
			if g.rng.Intn(2) == 0 {
				out = append(out, g.Periodic())
			} else {
				out = append(out, g.Parameterized())
			}
		default:
			out = append(out, g.Leaf())
		}
	}
	return out
}

// Drift nudges the active counts of w by at most one, never below zero.
// It stands in for live updates arriving between refreshes.
func (g *Generator) Drift(w *models.Workload) {
	nudge := func(n *int) {
		*n += g.rng.Intn(3) - 1
		if *n < 0 {
			*n = 0
		}
	}
	if w.HasChildren {
		nudge(&w.PendingChildren)
		nudge(&w.RunningChildren)
		nudge(&w.DeadChildren)
		return
	}
	nudge(&w.QueuedAllocs)
	nudge(&w.StartingAllocs)
	nudge(&w.RunningAllocs)
	nudge(&w.CompleteAllocs)
	nudge(&w.FailedAllocs)
	nudge(&w.LostAllocs)
}
