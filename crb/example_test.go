package crb_test

import (
	"fmt"

	"github.com/arraykit/doabound/crb"
	"github.com/arraykit/doabound/model"
)

// ExampleStochastic evaluates the stochastic bound for two equal-power
// sources on an 8-element half-wavelength ULA and reports the shape and
// structural invariants of the result.
func ExampleStochastic() {
	ula, _ := model.NewUniformLinearArray(8, 0.5)
	src, _ := model.NewFarField1D([]float64{-0.3, 0.4})

	opts := crb.DefaultOptions()
	opts.Snapshots = 200

	bound, err := crb.Stochastic(ula, 1.0, src, crb.ScalarPower(1), 0.1, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, c := bound.Dims()
	fmt.Printf("shape=%dx%d\n", r, c)
	fmt.Printf("symmetric=%t\n", bound.At(0, 1) == bound.At(1, 0))
	fmt.Printf("diag positive=%t\n", bound.At(0, 0) > 0 && bound.At(1, 1) > 0)
	// Output:
	// shape=2x2
	// symmetric=true
	// diag positive=true
}

// ExampleStochasticUncorrelated shows the optional Fisher-information
// output for the uncorrelated model: [angles; powers; noise] parameters
// give a (2K+1)-dimensional FIM.
func ExampleStochasticUncorrelated() {
	ula, _ := model.NewUniformLinearArray(8, 0.5)
	src, _ := model.NewFarField1D([]float64{-0.3, 0.4})

	opts := crb.DefaultOptions()
	opts.Snapshots = 200
	opts.ReturnFIM = true

	bound, fim, err := crb.StochasticUncorrelated(ula, 1.0, src, crb.VectorPower([]float64{1, 2}), 0.1, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	br, bc := bound.Dims()
	fr, fc := fim.Dims()
	fmt.Printf("crb=%dx%d fim=%dx%d\n", br, bc, fr, fc)
	// Output:
	// crb=2x2 fim=5x5
}

// ExampleDeterministic bounds the conditional model using the empirical
// sample covariance of the source signals.
func ExampleDeterministic() {
	ula, _ := model.NewUniformLinearArray(8, 0.5)
	src, _ := model.NewFarField1D([]float64{-0.3, 0.4})
	sampleCov := sampleCovEye(2) // (1/N)·Σ x(t)·xᴴ(t) from the caller's data

	bound, err := crb.Deterministic(ula, 1.0, src, sampleCov, 0.1, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, c := bound.Dims()
	fmt.Printf("shape=%dx%d\n", r, c)
	// Output:
	// shape=2x2
}
