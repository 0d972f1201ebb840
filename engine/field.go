package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/tcgsim/championship-sim/models"
)

// CP bounds for generated fields; the log-normal rating draw is scaled
// into this range before assignment.
const (
	MinGeneratedCP = 50
	MaxGeneratedCP = 2500
)

// Zone mix for a domestic major: overwhelmingly NA, with a thin layer
// of elite international travelers.
var zoneWeights = []struct {
	zone   models.RatingZone
	weight float64
}{
	{models.ZoneNA, 0.900},
	{models.ZoneEU, 0.050},
	{models.ZoneLATAM, 0.030},
	{models.ZoneOCE, 0.015},
	{models.ZoneMESA, 0.005},
}

var firstNames = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Casey", "Morgan", "Avery", "Riley",
	"Cameron", "Dakota", "Parker", "Hayden", "Sage", "River", "Skyler",
	"Phoenix", "Rowan", "Emery", "Quinn", "Blake", "Kai", "Nova", "Remi",
	"Charlie", "Finley", "Reese", "Sawyer", "Lennox", "Ari",
}

var lastNames = []string{
	"Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
	"Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez",
	"Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright",
}

func pickZone(rng *rand.Rand) models.RatingZone {
	r := rng.Float64()
	acc := 0.0
	for _, zw := range zoneWeights {
		acc += zw.weight
		if r < acc {
			return zw.zone
		}
	}
	return zoneWeights[len(zoneWeights)-1].zone
}

func pickName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

// GenerateField builds a fresh roster of the given size. Ratings follow
// a log-normal draw scaled to the CP range; international players are
// drawn only from the top quartile of the rating pool, modeling elite
// travelers. Player ids are assigned by CP rank, best first.
func GenerateField(rng *rand.Rand, size int) []*models.Player {
	if size <= 0 {
		return nil
	}

	raw := make([]float64, size)
	for i := range raw {
		raw[i] = math.Exp(rng.NormFloat64()*0.8 + 6.5)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(raw)))

	lo, hi := raw[size-1], raw[0]
	span := hi - lo
	cps := make([]int, size)
	for i, v := range raw {
		if span == 0 {
			cps[i] = MinGeneratedCP
			continue
		}
		cps[i] = int((v-lo)/span*(MaxGeneratedCP-MinGeneratedCP)) + MinGeneratedCP
	}

	eliteCount := size / 4
	if eliteCount == 0 {
		eliteCount = 1
	}
	elite := cps[:eliteCount]

	// Each pool is walked in a shuffled order. A rank-sequential walk
	// would starve the weakest draws out of the field entirely and
	// hand internationals only the very top ratings.
	fullOrder := rng.Perm(size)
	eliteOrder := rng.Perm(eliteCount)

	players := make([]*models.Player, 0, size)
	fullIdx, eliteIdx := 0, 0
	for i := 0; i < size; i++ {
		zone := pickZone(rng)
		var cp int
		if zone == models.ZoneNA {
			cp = cps[fullOrder[fullIdx%size]]
			fullIdx++
		} else {
			cp = elite[eliteOrder[eliteIdx%eliteCount]]
			eliteIdx++
		}
		players = append(players, models.NewPlayer(0, pickName(rng), cp, zone))
	}

	// Rank by CP so id 1 is the strongest entrant; ids double as the
	// deterministic final tie-break.
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].CP > players[j].CP
	})
	for i, p := range players {
		p.ID = i + 1
	}
	return players
}

// Composition computes the skill-threshold breakdown of a field. The
// report depends only on the roster, never on pairing order.
func Composition(players []*models.Player, threshold int) models.FieldComposition {
	c := models.FieldComposition{
		Total:     len(players),
		Threshold: threshold,
	}
	for _, p := range players {
		if p.CP <= threshold {
			c.BelowThreshold++
		} else {
			c.AboveThreshold++
		}
	}
	if c.Total > 0 {
		c.BelowPercent = float64(c.BelowThreshold) / float64(c.Total) * 100
		c.AbovePercent = float64(c.AboveThreshold) / float64(c.Total) * 100
	}
	return c
}
