// Package rand wraps a PCG32 generator so each worker can own an
// independent, cheaply seeded stream.
package rand

import (
	"sync/atomic"
	"time"

	"github.com/MichaelTJones/pcg"
)

// Rand is not safe for concurrent use; give every goroutine its own.
type Rand struct {
	r *pcg.PCG32
}

// New returns a generator for the given state and stream. Generators with
// the same state but different streams produce unrelated sequences.
func New(seed, stream uint64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	// The stream selector must be odd.
	r.r.Seed(seed, stream<<1|1)
	return r
}

var seedCounter atomic.Uint64

// NewSeed returns a seed that differs on every call, even within the same
// clock tick.
func NewSeed() uint64 {
	return uint64(time.Now().UnixNano()) ^ (seedCounter.Add(1) * 0x9e3779b97f4a7c15)
}

// Intn returns a uniform value in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

func (r *Rand) Float32() float32 {
	return float32(r.r.Random()) / (1<<32 - 1)
}

// Sample uniformly picks an element of a non-empty slice.
func Sample[T any](r *Rand, s []T) T {
	return s[r.Intn(len(s))]
}

// SampleDistinct returns k distinct elements of s in random order. When k
// exceeds len(s) elements are drawn with replacement instead.
func SampleDistinct[T any](r *Rand, s []T, k int) []T {
	if k <= 0 || len(s) == 0 {
		return nil
	}
	out := make([]T, 0, k)
	if k > len(s) {
		for i := 0; i < k; i++ {
			out = append(out, Sample(r, s))
		}
		return out
	}
	p := r.Uint32()
	for i := 0; i < k; i++ {
		out = append(out, s[PermutationElement(i, len(s), p)])
	}
	return out
}

// PermutationElement returns the ith element of the permutation of
// [0, n) selected by p (Kensler, "Correlated Multi-Jittered Sampling").
func PermutationElement(i int, n int, p uint32) int {
	ui, l := uint32(i), uint32(n)
	w := l - 1
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16
	for {
		ui ^= p
		ui *= 0xe170893d
		ui ^= p >> 16
		ui ^= (ui & w) >> 4
		ui ^= p >> 8
		ui *= 0x0929eb3f
		ui ^= p >> 23
		ui ^= (ui & w) >> 1
		ui *= 1 | p>>27
		ui *= 0x6935fa69
		ui ^= (ui & w) >> 11
		ui *= 0x74dcb303
		ui ^= (ui & w) >> 2
		ui *= 0x9e501cc3
		ui ^= (ui & w) >> 2
		ui *= 0xc860a3df
		ui &= w
		ui ^= ui >> 5
		if ui < l {
			break
		}
	}
	return int((ui + p) % l)
}
