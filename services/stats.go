package services

import "math"

// Distribution summarizes one observable collected across independent
// scenario runs.
type Distribution struct {
	Samples []float64 `json:"samples"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Mean    float64   `json:"mean"`
	StdDev  float64   `json:"std_dev"`
}

// NewDistribution computes summary statistics over the samples. The
// sample order (one per scenario index) is preserved so identical
// seeds produce identical distributions.
func NewDistribution(samples []float64) Distribution {
	d := Distribution{Samples: samples}
	if len(samples) == 0 {
		return d
	}
	d.Min, d.Max = samples[0], samples[0]
	sum := 0.0
	for _, v := range samples {
		if v < d.Min {
			d.Min = v
		}
		if v > d.Max {
			d.Max = v
		}
		sum += v
	}
	d.Mean = sum / float64(len(samples))

	variance := 0.0
	for _, v := range samples {
		diff := v - d.Mean
		variance += diff * diff
	}
	d.StdDev = math.Sqrt(variance / float64(len(samples)))
	return d
}
