package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     []float64
		yPred     []float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			yPred:     []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     []float64{1.0, 2.0, 3.0, 4.0},
			yPred:     []float64{1.5, 2.5, 2.5, 3.5},
			want:      0.25, // 4 * 0.25 / 4
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     []float64{10.0, 20.0, 30.0},
			yPred:     []float64{12.0, 18.0, 33.0},
			want:      17.0 / 3.0, // (4 + 4 + 9) / 3
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1.0, 2.0, 3.0},
			yPred:   []float64{1.0, 2.0},
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMSEMatrix(t *testing.T) {
	yTrue := mat.NewDense(3, 1, []float64{1, 2, 3})
	yPred := mat.NewDense(3, 1, []float64{1, 2, 5})

	got, err := MSEMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("MSEMatrix() unexpected error: %v", err)
	}
	if math.Abs(got-4.0/3.0) > 1e-12 {
		t.Errorf("MSEMatrix() = %v, want %v", got, 4.0/3.0)
	}

	if _, err := MSEMatrix(yTrue, mat.NewDense(3, 2, nil)); err == nil {
		t.Error("MSEMatrix() expected error for multi-column input")
	}
	if _, err := MSEMatrix(yTrue, mat.NewDense(2, 1, nil)); err == nil {
		t.Error("MSEMatrix() expected error for row mismatch")
	}
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{0, 0, 0, 0}, []float64{2, -2, 2, -2})
	if err != nil {
		t.Fatalf("RMSE() unexpected error: %v", err)
	}
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("RMSE() = %v, want 2", got)
	}
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{"mixed signs", []float64{1, 2, 3}, []float64{2, 2, 1}, 1.0, false},
		{"perfect", []float64{4, 5}, []float64{4, 5}, 0, false},
		{"mismatch", []float64{1}, []float64{1, 2}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MAE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MAE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{"perfect", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}, 1.0, false},
		{"mean predictor", []float64{1, 2, 3, 4}, []float64{2.5, 2.5, 2.5, 2.5}, 0.0, false},
		// RSS = 1, TSS = 5
		{"partial", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 5}, 0.8, false},
		{"constant target", []float64{3, 3, 3}, []float64{1, 2, 3}, 0, true},
		{"empty", nil, nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("R2Score() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExplainedVarianceScore(t *testing.T) {
	// 一定のずれは説明分散に影響しない
	got, err := ExplainedVarianceScore([]float64{1, 2, 3, 4}, []float64{2, 3, 4, 5})
	if err != nil {
		t.Fatalf("ExplainedVarianceScore() unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("ExplainedVarianceScore() = %v, want 1", got)
	}

	if _, err := ExplainedVarianceScore([]float64{2, 2}, []float64{1, 3}); err == nil {
		t.Error("ExplainedVarianceScore() expected error for constant target")
	}
}

func TestSSE(t *testing.T) {
	got, err := SSE([]float64{1, 2}, []float64{0, 4})
	if err != nil {
		t.Fatalf("SSE() unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("SSE() = %v, want 5", got)
	}
}
