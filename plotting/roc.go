// Package plotting renders evaluation curves to image files.
package plotting

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/logit-ml/logit/metrics"
	"github.com/logit-ml/logit/pkg/errors"
)

// SaveROCPlot renders a ROC curve with a dashed diagonal reference line
// and writes it to path. The output format follows the file extension
// (.png, .svg, .pdf, ...).
func SaveROCPlot(curve *metrics.ROCCurve, title, path string) error {
	if curve == nil || curve.Len() == 0 {
		return errors.NewValueError("SaveROCPlot", "empty curve")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, curve.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = curve.Point(i)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "building roc line")
	}
	line.Color = color.RGBA{B: 255, A: 255}

	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return errors.Wrap(err, "building reference line")
	}
	diagonal.Color = color.Gray{Y: 128}
	diagonal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(plotter.NewGrid(), line, diagonal)
	p.Legend.Add("ROC", line)
	p.Legend.Add("chance", diagonal)
	p.Legend.Top = false
	p.Legend.Left = false

	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving roc plot to %s", path)
	}
	return nil
}

// SaveLossCurve renders a training loss curve and writes it to path.
func SaveLossCurve(losses []float64, title, path string) error {
	if len(losses) == 0 {
		return errors.NewValueError("SaveLossCurve", "empty loss curve")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Cross-entropy"

	pts := make(plotter.XYs, len(losses))
	for i, loss := range losses {
		pts[i].X = float64(i)
		pts[i].Y = loss
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "building loss line")
	}
	line.Color = color.RGBA{R: 196, A: 255}
	line.Width = vg.Points(1.5)

	p.Add(plotter.NewGrid(), line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving loss plot to %s", path)
	}
	return nil
}
