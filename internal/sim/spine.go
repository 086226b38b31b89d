// Geometric spine-node selection
package sim

import (
	"math"
	"sort"

	"manet-sim/internal/config"
	"manet-sim/internal/world"
)

// SelectSpine ranks every node by the variant's geometric score and
// marks the best max(1, round(percent/100 * N)) of them as spine
// members. Runs once after placement; membership is fixed for the run.
// Returns the selected ids in rank order.
//
// Scores (lower is better):
//
//	centroid:   squared distance to the area center
//	horizontal: |y - areaY/2|
//
// Ties keep node-creation order (stable sort).
func SelectSpine(reg *world.Registry, percent float64, variant config.SpineVariant, areaX, areaY float64) []int {
	n := reg.Len()
	count := int(math.Round(percent / 100 * float64(n)))
	if count < 1 {
		count = 1
	}
	if count > n {
		count = n
	}

	cx, cy := areaX/2, areaY/2
	scores := make([]float64, n)
	order := make([]int, n)
	for i, node := range reg.Nodes() {
		order[i] = node.ID
		switch variant {
		case config.SpineCentroid:
			dx, dy := node.Position.X-cx, node.Position.Y-cy
			scores[node.ID] = dx*dx + dy*dy
		default:
			scores[node.ID] = math.Abs(node.Position.Y - cy)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	selected := order[:count]
	for _, id := range selected {
		reg.Node(id).Spine = true
	}
	return selected
}
