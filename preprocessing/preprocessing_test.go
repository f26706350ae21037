package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		var mean, variance float64
		for i := 0; i < r; i++ {
			mean += scaled.At(i, j)
		}
		mean /= float64(r)
		for i := 0; i < r; i++ {
			diff := scaled.At(i, j) - mean
			variance += diff * diff
		}
		variance /= float64(r)

		if math.Abs(mean) > 1e-10 {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}
		if math.Abs(variance-1) > 1e-10 {
			t.Errorf("column %d variance = %v, want 1", j, variance)
		}
	}
}

func TestStandardScalerConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if scaled.At(i, 0) != 0 {
			t.Errorf("constant column row %d = %v, want 0", i, scaled.At(i, 0))
		}
	}
}

func TestStandardScalerInverseTransformRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.5, -2,
		2.5, 0,
		3.5, 2,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	restored, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(restored.At(i, j)-X.At(i, j)) > 1e-10 {
				t.Errorf("restored[%d,%d] = %v, want %v", i, j, restored.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	if _, err := NewStandardScalerDefault().Transform(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Transform before Fit must error")
	}
}

func TestOneHotEncoder(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{2, 0, 1, 2, 0})

	enc := NewOneHotEncoder()
	encoded, err := enc.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	_, c := encoded.Dims()
	if c != 3 {
		t.Fatalf("encoded width = %d, want 3", c)
	}

	want := [][]float64{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}
	for i, row := range want {
		for j, v := range row {
			if encoded.At(i, j) != v {
				t.Errorf("encoded[%d,%d] = %v, want %v", i, j, encoded.At(i, j), v)
			}
		}
	}
}

func TestOneHotEncoderDropFirst(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 1, 2})

	enc := NewOneHotEncoderDropFirst()
	encoded, err := enc.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	_, c := encoded.Dims()
	if c != 2 {
		t.Fatalf("encoded width = %d, want 2", c)
	}

	// First category encodes as all zeros
	if encoded.At(0, 0) != 0 || encoded.At(0, 1) != 0 {
		t.Errorf("first category row = [%v %v], want zeros", encoded.At(0, 0), encoded.At(0, 1))
	}
	if encoded.At(1, 0) != 1 || encoded.At(2, 1) != 1 {
		t.Error("remaining categories must map to shifted indicator columns")
	}
}

func TestOneHotEncoderUnknownCategory(t *testing.T) {
	enc := NewOneHotEncoder()
	if err := enc.Fit(mat.NewDense(2, 1, []float64{0, 1})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	if _, err := enc.Transform(mat.NewDense(1, 1, []float64{9})); err == nil {
		t.Error("unknown category must error")
	}
}

func TestOneHotEncoderRejectsMultipleColumns(t *testing.T) {
	if err := NewOneHotEncoder().Fit(mat.NewDense(2, 2, []float64{0, 1, 1, 0})); err == nil {
		t.Error("multi-column input must error")
	}
}
