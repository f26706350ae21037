// Package selago provides feature-subset selection and regression
// model evaluation for Go, with a scikit-learn-flavored API built on
// gonum matrices.
//
// A selection run wires three pieces together: a dataset with a
// designated target column, a preprocessing+regression pipeline, and a
// cross-validation splitter whose mean error acts as the scoring
// oracle for subset search.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/selago-ml/selago/dataset"
//	    "github.com/selago-ml/selago/linear"
//	    "github.com/selago-ml/selago/modelselection"
//	    "github.com/selago-ml/selago/pipeline"
//	    "github.com/selago-ml/selago/selection"
//	)
//
//	func main() {
//	    f, err := os.Open("cars.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer f.Close()
//
//	    table, err := dataset.FromCSV(f, dataset.WithTarget("price"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    splitter := modelselection.NewKFold(5, true, 42)
//	    oracle, err := pipeline.NewSubsetOracle(table, linear.NewLinearRegression(), splitter)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    y, _ := table.Target()
//	    baseline, _ := modelselection.BaselineScore(y)
//
//	    result, err := selection.Forward(table.FeatureNames(), oracle,
//	        selection.WithBaseline(baseline))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Printf("best subset %v with CV error %.4f", result.Subset, result.Score)
//	}
//
// # Packages
//
//   - dataset: CSV loading into named-column tables over gonum matrices
//   - preprocessing: StandardScaler, OneHotEncoder
//   - linear: LinearRegression and Ridge via the normal equations
//   - metrics: MSE, RMSE, MAE, R²
//   - modelselection: k-fold and leave-one-out splitting, hold-out
//     splits, cross-validated scoring
//   - pipeline: transformer+estimator composition, per-column
//     treatment, subset oracle construction, YAML run configuration
//   - selection: exhaustive, forward and backward subset search
//   - plotting: search-trace figures
//   - core/model, core/parallel, pkg/errors, pkg/log: shared
//     infrastructure
package selago
