// Package plotting renders search results for quick inspection.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/selago-ml/selago/pkg/errors"
	"github.com/selago-ml/selago/selection"
)

// SearchTrace plots the incumbent cross-validation error against
// subset size over the course of a search and saves the figure to
// path. The format is inferred from the extension (.png, .svg, .pdf).
func SearchTrace(result *selection.Result, title, path string) error {
	if result == nil || len(result.Trace) == 0 {
		return errors.NewValueError("plotting.SearchTrace", "empty search trace")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Subset size"
	p.Y.Label.Text = "Mean CV error"

	pts := make(plotter.XYs, len(result.Trace))
	for i, tp := range result.Trace {
		pts[i].X = float64(tp.Size)
		pts[i].Y = tp.Score
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.Wrap(err, "plotting.SearchTrace")
	}
	p.Add(line, points)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "plotting.SearchTrace: save")
	}
	return nil
}
