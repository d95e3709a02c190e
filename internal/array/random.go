package array

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Generator draws arrays of random numbers from a seeded source. The same
// seed yields the same sequence of arrays. A Generator is not safe for
// concurrent use.
type Generator struct {
	src rand.Source
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Generator{src: src, rng: rand.New(src)}
}

// sample fills a new array of the given shape with draws from next.
func sample[T tensor.Numeric](shape []int, next func() float64) (Array[T], error) {
	s, err := shapeOf(shape)
	if err != nil {
		return Array[T]{}, err
	}
	a := newArray[T](s)
	data := a.buf.Data()
	for i := range data {
		data[i] = T(next())
	}
	return a, nil
}

// Uniform draws from the uniform distribution on [low, high).
func Uniform[T tensor.Float](g *Generator, low, high T, shape ...int) (Array[T], error) {
	if !(low < high) {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "uniform: empty interval [%v, %v)", low, high)
	}
	dist := distuv.Uniform{Min: float64(low), Max: float64(high), Src: g.src}
	return sample[T](shape, dist.Rand)
}

// Normal draws from the normal distribution with the given mean and standard deviation.
func Normal[T tensor.Float](g *Generator, mean, std T, shape ...int) (Array[T], error) {
	if !(std > 0) {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "normal: standard deviation %v", std)
	}
	dist := distuv.Normal{Mu: float64(mean), Sigma: float64(std), Src: g.src}
	return sample[T](shape, dist.Rand)
}

// UniformInt draws integers uniformly from [low, high).
func UniformInt[T tensor.Numeric](g *Generator, low, high int64, shape ...int) (Array[T], error) {
	if low >= high {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "uniform_int: empty interval [%d, %d)", low, high)
	}
	span := high - low
	return sample[T](shape, func() float64 { return float64(low + g.rng.Int64N(span)) })
}

// Binomial draws the number of successes in trials draws with success probability p.
func Binomial[T tensor.Numeric](g *Generator, trials int, p float64, shape ...int) (Array[T], error) {
	if trials < 0 || p < 0 || p > 1 || math.IsNaN(p) {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "binomial: %d trials with probability %v", trials, p)
	}
	dist := distuv.Binomial{N: float64(trials), P: p, Src: g.src}
	return sample[T](shape, dist.Rand)
}

// Poisson draws from the Poisson distribution with mean lambda.
func Poisson[T tensor.Numeric](g *Generator, lambda float64, shape ...int) (Array[T], error) {
	if !(lambda > 0) {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "poisson: lambda %v", lambda)
	}
	dist := distuv.Poisson{Lambda: lambda, Src: g.src}
	return sample[T](shape, dist.Rand)
}
