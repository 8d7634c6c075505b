package sample

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentz26/jobsummary/internal/models"
	"github.com/fentz26/jobsummary/internal/summary"
)

func TestLeafAndPeriodic(t *testing.T) {
	g := NewGenerator(1)

	leaf := g.Leaf()
	_, err := uuid.Parse(leaf.ID)
	require.NoError(t, err)
	assert.False(t, leaf.HasChildren)
	assert.Equal(t, models.ModeAllocations, summary.Classify(&leaf))

	p := g.Periodic()
	assert.True(t, p.HasChildren)
	assert.True(t, p.Periodic)
	assert.Equal(t, models.ModeChildren, summary.Classify(&p))

	pj := g.Parameterized()
	assert.True(t, pj.Parameterized)
	assert.False(t, pj.Periodic)
	assert.True(t, pj.HasChildren)
}

func TestMix(t *testing.T) {
	ws := NewGenerator(7).Mix(9)
	require.Len(t, ws, 9)

	parents := 0
	for _, w := range ws {
		if w.HasChildren {
			parents++
		}
	}
	assert.Equal(t, 3, parents)
}

func TestCountsBounded(t *testing.T) {
	g := NewGenerator(3)
	g.MaxCount = 4
	for i := 0; i < 20; i++ {
		w := g.Leaf()
		for _, e := range summary.SelectCategories(models.ModeAllocations, &w) {
			assert.Less(t, e.Count, 4)
		}
	}
}

func TestDriftNeverNegative(t *testing.T) {
	g := NewGenerator(5)
	w := models.Workload{}
	for i := 0; i < 50; i++ {
		g.Drift(&w)
		for _, e := range summary.SelectCategories(models.ModeAllocations, &w) {
			assert.GreaterOrEqual(t, e.Count, 0)
		}
	}

	parent := models.Workload{HasChildren: true, QueuedAllocs: 5}
	for i := 0; i < 10; i++ {
		g.Drift(&parent)
	}
	assert.Equal(t, 5, parent.QueuedAllocs, "drift only touches the active vector")
}
