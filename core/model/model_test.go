package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

func TestPredictorSet_Validate(t *testing.T) {
	constant := PredictorFunc(func([]float64) (float64, error) { return 1, nil })

	tests := []struct {
		name    string
		set     PredictorSet
		wantErr bool
	}{
		{"empty", PredictorSet{}, true},
		{"nil member", PredictorSet{constant, nil}, true},
		{"ok", PredictorSet{constant, constant}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.wantErr {
				var ve *errors.ValidationError
				assert.True(t, errors.As(err, &ve))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPredictorSet_Outputs(t *testing.T) {
	set := PredictorSet{
		PredictorFunc(func(x []float64) (float64, error) { return x[0], nil }),
		PredictorFunc(func(x []float64) (float64, error) { return 2 * x[0], nil }),
	}

	out, err := set.Outputs([]float64{3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, out)

	buf := make([]float64, 0, 8)
	out, err = set.Outputs([]float64{1}, buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, out)
}

func TestPredictorSet_OutputsPropagatesError(t *testing.T) {
	set := PredictorSet{
		PredictorFunc(func([]float64) (float64, error) { return 0, nil }),
		PredictorFunc(func([]float64) (float64, error) { return 0, fmt.Errorf("broken") }),
	}
	_, err := set.Outputs([]float64{0}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "predictor 1")
	assert.Contains(t, err.Error(), "broken")
}

func TestPredictorSet_OutputsRecoversPanic(t *testing.T) {
	set := PredictorSet{
		PredictorFunc(func([]float64) (float64, error) { return 1, nil }),
		PredictorFunc(func([]float64) (float64, error) { panic("boom") }),
	}
	out, err := set.Outputs([]float64{0}, nil)
	require.Error(t, err)
	assert.Nil(t, out)

	var pe *errors.PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "boom", pe.PanicValue)
	assert.Equal(t, "PredictOne", pe.Operation)
	assert.Contains(t, err.Error(), "predictor 1")
}

func TestPredictRows(t *testing.T) {
	p := PredictorFunc(func(x []float64) (float64, error) { return x[0] + x[1], nil })
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	out, err := PredictRows(p, X)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7, 11}, mat.Col(nil, 0, out))
}

func TestStateManager_Lifecycle(t *testing.T) {
	s := NewStateManager("Average")

	err := s.RequireFitted("PredictOne")
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Average", nf.ModelName)
	assert.NoError(t, s.RequireUnfitted())

	require.NoError(t, s.MarkFitted(2, 10))
	assert.True(t, s.IsFitted())
	assert.NoError(t, s.RequireFitted("PredictOne"))

	nFeatures, nSamples := s.GetDimensions()
	assert.Equal(t, 2, nFeatures)
	assert.Equal(t, 10, nSamples)

	assert.True(t, errors.Is(s.MarkFitted(2, 10), errors.ErrAlreadyFitted))
	assert.True(t, errors.Is(s.RequireUnfitted(), errors.ErrAlreadyFitted))

	assert.NoError(t, s.RequireInputDim("PredictOne", 2))
	var de *errors.DimensionError
	assert.True(t, errors.As(s.RequireInputDim("PredictOne", 3), &de))
}

func TestWeights_JSONRoundTripAndValidate(t *testing.T) {
	w := &Weights{
		ModelType:       "Biased",
		Version:         WeightsVersion,
		Coefficients:    []float64{0.25, 0.75},
		Intercept:       1.5,
		Hyperparameters: map[string]interface{}{"max_iterations": 20},
		IsFitted:        true,
	}
	data, err := w.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"model_type": "Biased"`)

	var got Weights
	require.NoError(t, got.FromJSON(data))
	assert.Equal(t, w.Coefficients, got.Coefficients)
	assert.Equal(t, 1.5, got.Intercept)

	var ve *errors.ValidationError
	assert.True(t, errors.As((&Weights{Version: WeightsVersion}).Validate(), &ve))
	assert.True(t, errors.As((&Weights{ModelType: "Average", Version: "0", IsFitted: true, Coefficients: []float64{1}}).Validate(), &ve))
	assert.True(t, errors.As((&Weights{ModelType: "Average", Version: WeightsVersion, IsFitted: true}).Validate(), &ve))
	assert.True(t, errors.As((&Weights{ModelType: "Average", Version: WeightsVersion, Coefficients: []float64{1}}).Validate(), &ve))
	assert.Error(t, got.FromJSON([]byte("{")))
}

func TestWeights_CloneIsDeep(t *testing.T) {
	w := &Weights{
		ModelType:    "Unbiased",
		Version:      WeightsVersion,
		Coefficients: []float64{1, 2},
		Metadata:     map[string]interface{}{"loss": 0.5},
		IsFitted:     true,
	}
	c := w.Clone()
	c.Coefficients[0] = 9
	c.Metadata["loss"] = 1.0
	assert.Equal(t, 1.0, w.Coefficients[0])
	assert.Equal(t, 0.5, w.Metadata["loss"])
	assert.Nil(t, c.Hyperparameters)
}
