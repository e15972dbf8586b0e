package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

func TestExportWeights(t *testing.T) {
	X := grid(4)
	y := targets(X, func(x []float64) float64 { return 2*linearA(x) + 1 })

	for _, kind := range []Kind{KindAverage, KindBagged, KindUnconstrained, KindUnbiased, KindBiased, KindWeighted} {
		t.Run(kind.String(), func(t *testing.T) {
			c, err := New(kind, threePredictors(), quiet())
			require.NoError(t, err)
			exporter, ok := c.(model.WeightExporter)
			require.True(t, ok)

			var nf *errors.NotFittedError
			_, err = exporter.ExportWeights()
			assert.True(t, errors.As(err, &nf))

			require.NoError(t, c.Fit(X, y))
			w, err := exporter.ExportWeights()
			require.NoError(t, err)
			require.NoError(t, w.Validate())
			assert.Equal(t, kind.String(), w.ModelType)
			assert.Len(t, w.Coefficients, 3)
			assert.Equal(t, "powell", w.Hyperparameters["minimizer"])

			// the export reproduces the combiner on a new case
			x := []float64{0.7, -0.2}
			want, err := c.PredictOne(x)
			require.NoError(t, err)
			got := w.Intercept + w.Coefficients[0]*linearA(x) + w.Coefficients[1]*square(x) + w.Coefficients[2]*sinY(x)
			assert.InDelta(t, want, got, 1e-9)
		})
	}
}

func TestExportWeights_GenRegIsNotLinear(t *testing.T) {
	g, err := NewGenReg(threePredictors())
	require.NoError(t, err)
	_, ok := Combiner(g).(model.WeightExporter)
	assert.False(t, ok)
}

func TestExportWeights_AverageIsEqual(t *testing.T) {
	X := grid(3)
	a, err := FitCombiner(KindAverage, X, targets(X, linearA), model.PredictorSet{constant(1), constant(2), constant(3), constant(4)}, quiet())
	require.NoError(t, err)
	w, err := a.(model.WeightExporter).ExportWeights()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, w.Coefficients)
	assert.Nil(t, w.Metadata)
}
