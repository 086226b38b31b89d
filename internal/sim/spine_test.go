package sim

import (
	"testing"

	"manet-sim/internal/config"
	"manet-sim/internal/world"
)

func placeAt(reg *world.Registry, positions []world.Vector) {
	for i, p := range positions {
		reg.Node(i).Position = p
	}
}

func TestSelectSpineHorizontalPicksMidlineNodes(t *testing.T) {
	reg := world.NewRegistry(5)
	// Area 10x10, midline y=5. Distances to it: 4, 0.5, 3, 1, 5.
	placeAt(reg, []world.Vector{
		{X: 1, Y: 1},
		{X: 2, Y: 4.5},
		{X: 3, Y: 8},
		{X: 4, Y: 6},
		{X: 5, Y: 10},
	})

	got := SelectSpine(reg, 40, config.SpineHorizontal, 10, 10)
	if len(got) != 2 {
		t.Fatalf("selected %d nodes, want 2", len(got))
	}
	if got[0] != 1 || got[1] != 3 {
		t.Errorf("selected %v, want [1 3]", got)
	}
	for _, id := range got {
		if !reg.Node(id).Spine {
			t.Errorf("node %d not marked as spine", id)
		}
	}
}

func TestSelectSpineCentroidPicksCentralNodes(t *testing.T) {
	reg := world.NewRegistry(4)
	// Area 10x10, center (5,5).
	placeAt(reg, []world.Vector{
		{X: 0, Y: 0},
		{X: 5, Y: 4},
		{X: 9, Y: 9},
		{X: 6, Y: 6},
	})

	got := SelectSpine(reg, 25, config.SpineCentroid, 10, 10)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("selected %v, want [1]", got)
	}
}

func TestSelectSpineAlwaysPicksAtLeastOne(t *testing.T) {
	reg := world.NewRegistry(5)
	placeAt(reg, make([]world.Vector, 5))

	got := SelectSpine(reg, 0, config.SpineHorizontal, 10, 10)
	if len(got) != 1 {
		t.Errorf("zero percent must still select one node, got %v", got)
	}
}

func TestSelectSpineCountRounds(t *testing.T) {
	cases := []struct {
		nodes   int
		percent float64
		want    int
	}{
		{5, 20, 1},
		{10, 25, 3}, // 2.5 rounds away from zero
		{10, 24, 2},
		{4, 100, 4},
		{3, 200, 3}, // clamped to N
	}
	for _, tc := range cases {
		reg := world.NewRegistry(tc.nodes)
		placeAt(reg, make([]world.Vector, tc.nodes))
		got := SelectSpine(reg, tc.percent, config.SpineHorizontal, 10, 10)
		if len(got) != tc.want {
			t.Errorf("%d nodes at %.0f%%: selected %d, want %d",
				tc.nodes, tc.percent, len(got), tc.want)
		}
	}
}

func TestSelectSpineTiesKeepCreationOrder(t *testing.T) {
	reg := world.NewRegistry(3)
	// All equidistant from the midline.
	placeAt(reg, []world.Vector{
		{X: 1, Y: 4},
		{X: 2, Y: 6},
		{X: 3, Y: 4},
	})

	got := SelectSpine(reg, 67, config.SpineHorizontal, 10, 10)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("selected %v, want [0 1]", got)
	}
}
