// Package modelselection provides cross-validation splitters and
// scoring used to estimate out-of-sample error of a regression model.
// The mean cross-validated error produced here is the scoring oracle
// consumed by subset search.
package modelselection

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/pkg/errors"
)

// Fold is one train/test partition of the row indices.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// Splitter produces train/test folds for a dataset.
type Splitter interface {
	Split(X, y mat.Matrix) []Fold
	// NumSplits returns the number of folds, or -1 when it depends on
	// the data (leave-one-out).
	NumSplits() int
}

// KFold implements k-fold cross-validation. With Shuffle set, rows are
// permuted with a PCG source seeded from RandomSeed, so splits are
// reproducible for a fixed seed.
type KFold struct {
	NSplits    int
	Shuffle    bool
	RandomSeed int
}

// NewKFold creates a k-fold splitter. Fewer than 2 splits falls back
// to the conventional 5.
func NewKFold(nSplits int, shuffle bool, randomSeed int) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{
		NSplits:    nSplits,
		Shuffle:    shuffle,
		RandomSeed: randomSeed,
	}
}

// NumSplits returns the number of folds.
func (kf *KFold) NumSplits() int {
	return kf.NSplits
}

// Split generates train/test indices for each fold.
func (kf *KFold) Split(X, _ mat.Matrix) []Fold {
	nSamples, _ := X.Dims()

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}

	if kf.Shuffle {
		r := rand.New(rand.NewPCG(uint64(kf.RandomSeed), uint64(kf.RandomSeed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.NSplits)
	foldSize := nSamples / kf.NSplits
	remainder := nSamples % kf.NSplits

	currentIdx := 0
	for i := 0; i < kf.NSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[currentIdx:currentIdx+testSize])

		testSet := make(map[int]bool, testSize)
		for _, idx := range testIndices {
			testSet[idx] = true
		}

		trainIndices := make([]int, 0, nSamples-testSize)
		for _, idx := range indices {
			if !testSet[idx] {
				trainIndices = append(trainIndices, idx)
			}
		}

		folds[i] = Fold{
			TrainIndices: trainIndices,
			TestIndices:  testIndices,
		}

		currentIdx += testSize
	}

	return folds
}

// LeaveOneOut holds out each row in turn, producing n folds of one
// test row each.
type LeaveOneOut struct{}

// NewLeaveOneOut creates a leave-one-out splitter.
func NewLeaveOneOut() *LeaveOneOut {
	return &LeaveOneOut{}
}

// NumSplits returns -1: the fold count equals the row count.
func (*LeaveOneOut) NumSplits() int {
	return -1
}

// Split generates one fold per row.
func (*LeaveOneOut) Split(X, _ mat.Matrix) []Fold {
	nSamples, _ := X.Dims()

	folds := make([]Fold, nSamples)
	for i := 0; i < nSamples; i++ {
		trainIndices := make([]int, 0, nSamples-1)
		for j := 0; j < nSamples; j++ {
			if j != i {
				trainIndices = append(trainIndices, j)
			}
		}
		folds[i] = Fold{
			TrainIndices: trainIndices,
			TestIndices:  []int{i},
		}
	}
	return folds
}

// TrainTestSplit partitions rows into a shuffled train and test set.
// testSize is the fraction of rows held out, in (0, 1).
func TrainTestSplit(X, y mat.Matrix, testSize float64, randomSeed int) (XTrain, XTest, yTrain, yTest mat.Matrix, err error) {
	nSamples, _ := X.Dims()
	if nSamples == 0 {
		return nil, nil, nil, nil, errors.NewModelError("TrainTestSplit", "empty data", errors.ErrEmptyData)
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "testSize must be in (0, 1)")
	}

	nTest := int(float64(nSamples) * testSize)
	if nTest == 0 {
		nTest = 1
	}
	if nTest >= nSamples {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "too few rows to leave a non-empty training set")
	}

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}
	r := rand.New(rand.NewPCG(uint64(randomSeed), uint64(randomSeed)))
	r.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	testIdx := indices[:nTest]
	trainIdx := indices[nTest:]

	XTrain, yTrain = extractRows(X, y, trainIdx)
	XTest, yTest = extractRows(X, y, testIdx)
	return XTrain, XTest, yTrain, yTest, nil
}
