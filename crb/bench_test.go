package crb_test

import (
	"testing"

	"github.com/arraykit/doabound/crb"
	"github.com/arraykit/doabound/model"
)

// benchScene builds an m-element half-wavelength ULA with k spread-out
// sources for the evaluator benchmarks.
func benchScene(b *testing.B, m, k int) (*model.UniformLinearArray, *model.FarField1D) {
	b.Helper()
	ula, err := model.NewUniformLinearArray(m, 0.5)
	if err != nil {
		b.Fatalf("array: %v", err)
	}
	angles := make([]float64, k)
	for i := range angles {
		angles[i] = -0.6 + 1.2*float64(i)/float64(k)
	}
	src, err := model.NewFarField1D(angles)
	if err != nil {
		b.Fatalf("sources: %v", err)
	}

	return ula, src
}

// BenchmarkStochastic measures the correlated stochastic bound on a
// 16-element array with 3 sources.
func BenchmarkStochastic(b *testing.B) {
	ula, src := benchScene(b, 16, 3)
	opts := crb.DefaultOptions()
	opts.Snapshots = 100

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crb.Stochastic(ula, 1.0, src, crb.ScalarPower(1), 0.1, &opts); err != nil {
			b.Fatalf("Stochastic failed: %v", err)
		}
	}
}

// BenchmarkStochasticUncorrelated measures the full-FIM path, the most
// expensive of the three evaluators.
func BenchmarkStochasticUncorrelated(b *testing.B) {
	ula, src := benchScene(b, 16, 3)
	opts := crb.DefaultOptions()
	opts.Snapshots = 100

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := crb.StochasticUncorrelated(ula, 1.0, src, crb.ScalarPower(1), 0.1, &opts); err != nil {
			b.Fatalf("StochasticUncorrelated failed: %v", err)
		}
	}
}
