package math

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func assertVec(t *testing.T, name string, got, want Vec3, eps float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.X, want.X, eps) ||
		!scalar.EqualWithinAbs(got.Y, want.Y, eps) ||
		!scalar.EqualWithinAbs(got.Z, want.Z, eps) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func assertMat(t *testing.T, name string, got, want Mat3, eps float64) {
	t.Helper()
	for i := range got {
		if !scalar.EqualWithinAbs(got[i], want[i], eps) {
			t.Errorf("%s: element %d: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

// randomVecs returns n reproducible vectors with components in [-scale, scale).
func randomVecs(seed int64, n int, scale float64) []Vec3 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Vec3, n)
	for i := range out {
		out[i] = Vec3{
			(rng.Float64()*2 - 1) * scale,
			(rng.Float64()*2 - 1) * scale,
			(rng.Float64()*2 - 1) * scale,
		}
	}
	return out
}

func randomAngles(seed int64, n int, limit float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * limit
	}
	return out
}

// mustMat unwraps a (Mat3, error) pair: mustMat(t)(Yaw(a)).
func mustMat(t *testing.T) func(Mat3, error) Mat3 {
	t.Helper()
	return func(m Mat3, err error) Mat3 {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return m
	}
}
