// Package points maps tournament placements to championship points
// using the official power-of-two bracket table. The tournament engine
// never embeds point values; it emits placements and callers apply
// this table (or skip it when season tracking is off).
package points

// tier covers placements first..last inclusive.
type tier struct {
	first, last, points int
}

var tiers = []tier{
	{1, 1, 500},
	{2, 2, 480},
	{3, 4, 420},
	{5, 8, 380},
	{9, 16, 300},
	{17, 32, 200},
	{33, 64, 150},
	{65, 128, 120},
	{129, 256, 100},
	{257, 512, 80},
	{513, 1024, 40},
}

// ForPlacement returns the championship points awarded for a final
// placement, or 0 beyond 1024th place.
func ForPlacement(placement int) int {
	if placement < 1 {
		return 0
	}
	for _, t := range tiers {
		if placement >= t.first && placement <= t.last {
			return t.points
		}
	}
	return 0
}

// MaxScoringPlacement is the deepest placement that still awards
// points.
const MaxScoringPlacement = 1024
