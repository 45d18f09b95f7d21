package expander

import (
	"math"
	"strconv"
)

// Source provides uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// ScoreSampler draws scores uniformly from [Min, Max] and snaps them to Step
type ScoreSampler struct {
	Min  float64
	Max  float64
	Step float64
}

// Sample draws one snapped score from src
func (s ScoreSampler) Sample(src Source) float64 {
	v := s.Min + (s.Max-s.Min)*src.Float64()
	return snap(v, s.Step)
}

// SampleString draws one score and formats it the way the dataset stores scores
func (s ScoreSampler) SampleString(src Source) string {
	return FormatScore(s.Sample(src))
}

// snap rounds v to the nearest multiple of step, halves away from zero
func snap(v, step float64) float64 {
	return math.Round(v/step) * step
}

// FormatScore renders whole scores without decimals ("7") and others with one ("7.5")
func FormatScore(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
