package expander

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource replays the given values in order
type fixedSource struct {
	values []float64
	next   int
}

func (s *fixedSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestFormatScore(t *testing.T) {
	cases := map[float64]string{
		5:   "5",
		7:   "7",
		7.5: "7.5",
		10:  "10",
		9.5: "9.5",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatScore(in), "FormatScore(%v)", in)
	}
}

func TestSnapRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 7.5, snap(7.25, 0.5))
	assert.Equal(t, 7.0, snap(7.24, 0.5))
	assert.Equal(t, 10.0, snap(9.75, 0.5))
	assert.Equal(t, 5.0, snap(5.2, 0.5))
}

func TestScoreSamplerUsesSource(t *testing.T) {
	sampler := ScoreSampler{Min: 5, Max: 10, Step: 0.5}
	src := &fixedSource{values: []float64{0, 0.25, 0.5, 0.6, 0.999}}

	var got []string
	for i := 0; i < 5; i++ {
		got = append(got, sampler.SampleString(src))
	}
	assert.Equal(t, []string{"5", "6.5", "7.5", "8", "10"}, got)
}

func TestScoreSamplerRange(t *testing.T) {
	sampler := ScoreSampler{Min: 5, Max: 10, Step: 0.5}
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 10000; i++ {
		v := sampler.Sample(rng)
		assert.GreaterOrEqual(t, v, 5.0)
		assert.LessOrEqual(t, v, 10.0)
		assert.Equal(t, v*2, math.Trunc(v*2), "%v is not a multiple of 0.5", v)
	}
}
