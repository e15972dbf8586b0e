package experiment

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// PlotErrors saves a bar chart of the mean base model error and the mean
// error of each combiner. The image format follows the extension of path.
func PlotErrors(r *Report, path string) error {
	if r == nil || r.Tries == 0 {
		return errors.NewValueError("PlotErrors", "report has no tries")
	}

	names := []string{"Raw"}
	values := plotter.Values{r.MeanRawError()}
	for i, e := range r.mean(r.methodSum) {
		names = append(names, r.Kinds[i].String())
		values = append(values, e)
	}

	p := plot.New()
	p.Title.Text = "Test error by combination method"
	p.Y.Label.Text = "MSE"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "PlotErrors")
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "PlotErrors")
	}
	return nil
}
