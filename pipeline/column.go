package pipeline

import (
	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/pkg/errors"
	"github.com/selago-ml/selago/preprocessing"
)

// ColumnPipeline treats columns of X differently by name: categorical
// columns are one-hot encoded, the remaining numeric columns are
// standardized, and the blocks are concatenated (numeric first, in
// column order, then one indicator block per categorical column)
// before the estimator is fitted.
type ColumnPipeline struct {
	model.BaseEstimator

	columns     []string
	categorical map[string]bool
	estimator   model.Regressor

	numericIdx     []int
	categoricalIdx []int

	scaler   *preprocessing.StandardScaler
	encoders []*preprocessing.OneHotEncoder
	fitted   model.Regressor
}

// NewColumnPipeline creates a column pipeline for a matrix whose
// columns are the named features in order. Names listed in
// categorical are one-hot encoded.
func NewColumnPipeline(estimator model.Regressor, columns []string, categorical []string) *ColumnPipeline {
	catSet := make(map[string]bool, len(categorical))
	for _, name := range categorical {
		catSet[name] = true
	}

	cp := &ColumnPipeline{
		columns:     append([]string(nil), columns...),
		categorical: catSet,
		estimator:   estimator,
	}
	for i, name := range cp.columns {
		if catSet[name] {
			cp.categoricalIdx = append(cp.categoricalIdx, i)
		} else {
			cp.numericIdx = append(cp.numericIdx, i)
		}
	}
	return cp
}

// Fit fits the per-column transformers and the estimator.
func (cp *ColumnPipeline) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	if c != len(cp.columns) {
		return errors.NewDimensionError("ColumnPipeline.Fit", len(cp.columns), c, 1)
	}
	if r == 0 {
		return errors.NewModelError("ColumnPipeline.Fit", "empty data", errors.ErrEmptyData)
	}

	blocks := make([]mat.Matrix, 0, 1+len(cp.categoricalIdx))

	if len(cp.numericIdx) > 0 {
		numeric := pickColumns(X, cp.numericIdx)
		cp.scaler = preprocessing.NewStandardScalerDefault()
		scaled, err := cp.scaler.FitTransform(numeric)
		if err != nil {
			return errors.Wrap(err, "ColumnPipeline scaling")
		}
		blocks = append(blocks, scaled)
	}

	cp.encoders = make([]*preprocessing.OneHotEncoder, 0, len(cp.categoricalIdx))
	for _, idx := range cp.categoricalIdx {
		// Drop-first keeps the design matrix full rank alongside the
		// estimator's intercept
		enc := preprocessing.NewOneHotEncoderDropFirst()
		encoded, err := enc.FitTransform(pickColumns(X, []int{idx}))
		if err != nil {
			return errors.Wrapf(err, "ColumnPipeline encoding column %q", cp.columns[idx])
		}
		cp.encoders = append(cp.encoders, enc)
		blocks = append(blocks, encoded)
	}

	cp.fitted = cloneEstimator(cp.estimator)
	if err := cp.fitted.Fit(hstack(blocks), y); err != nil {
		return errors.Wrap(err, "ColumnPipeline estimator fit")
	}

	cp.SetFitted()
	return nil
}

// Predict transforms X with the fitted per-column transformers and
// predicts with the fitted estimator.
func (cp *ColumnPipeline) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !cp.IsFitted() {
		return nil, errors.NewNotFittedError("ColumnPipeline", "Predict")
	}

	_, c := X.Dims()
	if c != len(cp.columns) {
		return nil, errors.NewDimensionError("ColumnPipeline.Predict", len(cp.columns), c, 1)
	}

	blocks := make([]mat.Matrix, 0, 1+len(cp.categoricalIdx))

	if len(cp.numericIdx) > 0 {
		scaled, err := cp.scaler.Transform(pickColumns(X, cp.numericIdx))
		if err != nil {
			return nil, errors.Wrap(err, "ColumnPipeline scaling")
		}
		blocks = append(blocks, scaled)
	}

	for i, idx := range cp.categoricalIdx {
		encoded, err := cp.encoders[i].Transform(pickColumns(X, []int{idx}))
		if err != nil {
			return nil, errors.Wrapf(err, "ColumnPipeline encoding column %q", cp.columns[idx])
		}
		blocks = append(blocks, encoded)
	}

	return cp.fitted.Predict(hstack(blocks))
}

// Clone returns an unfitted copy with the same column layout and
// estimator hyperparameters.
func (cp *ColumnPipeline) Clone() model.Regressor {
	categorical := make([]string, 0, len(cp.categorical))
	for _, name := range cp.columns {
		if cp.categorical[name] {
			categorical = append(categorical, name)
		}
	}
	return NewColumnPipeline(cloneEstimator(cp.estimator), cp.columns, categorical)
}

// pickColumns copies the given columns of X into a new matrix.
func pickColumns(X mat.Matrix, indices []int) *mat.Dense {
	r, _ := X.Dims()
	out := mat.NewDense(r, len(indices), nil)
	for k, j := range indices {
		for i := 0; i < r; i++ {
			out.Set(i, k, X.At(i, j))
		}
	}
	return out
}

// hstack concatenates matrices with equal row counts side by side.
func hstack(blocks []mat.Matrix) mat.Matrix {
	if len(blocks) == 1 {
		return blocks[0]
	}

	rows, _ := blocks[0].Dims()
	cols := 0
	for _, b := range blocks {
		_, c := b.Dims()
		cols += c
	}

	out := mat.NewDense(rows, cols, nil)
	offset := 0
	for _, b := range blocks {
		_, c := b.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, offset+j, b.At(i, j))
			}
		}
		offset += c
	}
	return out
}
