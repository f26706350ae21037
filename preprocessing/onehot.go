package preprocessing

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/pkg/errors"
)

// OneHotEncoder expands a single categorical column, given as an n×1
// matrix of category codes, into one indicator column per distinct
// category. Categories are ordered by value so the encoding is stable
// across fits on the same data.
//
// With DropFirst set, the first (lowest) category gets no column and
// is encoded as all zeros. Models that fit an intercept need this to
// keep the design matrix full rank.
type OneHotEncoder struct {
	model.BaseEstimator

	// Categories holds the distinct values seen during Fit, sorted.
	Categories []float64

	// DropFirst omits the indicator column for the first category.
	DropFirst bool

	index map[float64]int
}

// NewOneHotEncoder creates a OneHotEncoder that emits one column per
// category.
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{}
}

// NewOneHotEncoderDropFirst creates a OneHotEncoder that omits the
// first category's column.
func NewOneHotEncoderDropFirst() *OneHotEncoder {
	return &OneHotEncoder{DropFirst: true}
}

// Fit learns the distinct categories present in X.
func (e *OneHotEncoder) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty data", errors.ErrEmptyData)
	}
	if c != 1 {
		return errors.NewValueError("OneHotEncoder.Fit", "input must be a single column")
	}

	seen := make(map[float64]struct{})
	for i := 0; i < r; i++ {
		seen[X.At(i, 0)] = struct{}{}
	}

	e.Categories = make([]float64, 0, len(seen))
	for v := range seen {
		e.Categories = append(e.Categories, v)
	}
	sort.Float64s(e.Categories)

	e.index = make(map[float64]int, len(e.Categories))
	for i, v := range e.Categories {
		e.index[v] = i
	}

	e.SetFitted()
	return nil
}

// Width returns the number of output columns.
func (e *OneHotEncoder) Width() int {
	if e.DropFirst {
		return len(e.Categories) - 1
	}
	return len(e.Categories)
}

// Transform expands X into an n×Width() indicator matrix. A value not
// seen during Fit is an error, as is a drop-first encoding of a
// single-category column (it would produce zero columns).
func (e *OneHotEncoder) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}

	r, c := X.Dims()
	if c != 1 {
		return nil, errors.NewValueError("OneHotEncoder.Transform", "input must be a single column")
	}

	width := e.Width()
	if width == 0 {
		return nil, errors.NewValueError("OneHotEncoder.Transform", "drop-first encoding of a single-category column produces no columns")
	}

	result := mat.NewDense(r, width, nil)
	for i := 0; i < r; i++ {
		v := X.At(i, 0)
		j, ok := e.index[v]
		if !ok {
			return nil, errors.Newf("OneHotEncoder.Transform: unknown category %v at row %d", v, i)
		}
		if e.DropFirst {
			if j == 0 {
				continue
			}
			j--
		}
		result.Set(i, j, 1.0)
	}
	return result, nil
}

// FitTransform fits the encoder and transforms the same data.
func (e *OneHotEncoder) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := e.Fit(X); err != nil {
		return nil, err
	}
	return e.Transform(X)
}
