// Package diagnostics renders standard regression diagnostic plots for a
// fitted model: residuals against fitted values, and observed against
// fitted responses.
package diagnostics

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/olskit/olskit/pkg/errors"
)

// ResidualPlot writes a residuals-versus-fitted scatter to path. The image
// format follows the file extension (png, svg, pdf, ...). A well-specified
// model shows residuals scattered evenly around the zero line.
func ResidualPlot(fitted, residuals *mat.VecDense, path string) error {
	n := fitted.Len()
	if n == 0 {
		return errors.NewValueError("ResidualPlot", "empty vector")
	}
	if residuals.Len() != n {
		return errors.NewDimensionError("ResidualPlot", n, residuals.Len(), 0)
	}

	pts := make(plotter.XYs, n)
	minX, maxX := fitted.AtVec(0), fitted.AtVec(0)
	for i := 0; i < n; i++ {
		pts[i].X = fitted.AtVec(i)
		pts[i].Y = residuals.AtVec(i)
		if pts[i].X < minX {
			minX = pts[i].X
		}
		if pts[i].X > maxX {
			maxX = pts[i].X
		}
	}

	p := plot.New()
	p.Title.Text = "Residuals vs Fitted"
	p.X.Label.Text = "fitted value"
	p.Y.Label.Text = "residual"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "ResidualPlot: scatter")
	}
	p.Add(scatter)

	zero, err := plotter.NewLine(plotter.XYs{{X: minX, Y: 0}, {X: maxX, Y: 0}})
	if err != nil {
		return errors.Wrap(err, "ResidualPlot: zero line")
	}
	p.Add(zero)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "ResidualPlot: save")
	}
	return nil
}

// ObservedVsFitted writes an observed-versus-fitted scatter to path, with
// the identity line for reference. Points hugging the line indicate a good
// fit.
func ObservedVsFitted(observed, fitted *mat.VecDense, path string) error {
	n := observed.Len()
	if n == 0 {
		return errors.NewValueError("ObservedVsFitted", "empty vector")
	}
	if fitted.Len() != n {
		return errors.NewDimensionError("ObservedVsFitted", n, fitted.Len(), 0)
	}

	pts := make(plotter.XYs, n)
	minV, maxV := observed.AtVec(0), observed.AtVec(0)
	for i := 0; i < n; i++ {
		pts[i].X = fitted.AtVec(i)
		pts[i].Y = observed.AtVec(i)
		for _, v := range []float64{pts[i].X, pts[i].Y} {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Observed vs Fitted"
	p.X.Label.Text = "fitted value"
	p.Y.Label.Text = "observed value"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "ObservedVsFitted: scatter")
	}
	p.Add(scatter)

	identity, err := plotter.NewLine(plotter.XYs{{X: minV, Y: minV}, {X: maxV, Y: maxV}})
	if err != nil {
		return errors.Wrap(err, "ObservedVsFitted: identity line")
	}
	p.Add(identity)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "ObservedVsFitted: save")
	}
	return nil
}
