package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// 標準偏差がこれより小さい列はスケール1として扱う
const minScale = 1e-8

// StandardScaler はデータを列ごとに平均0、標準偏差1に変換する。
// GRNN の入力標準化に使う。
type StandardScaler struct {
	state *model.StateManager

	// Mean は各特徴量の平均値
	Mean []float64

	// Scale は各特徴量の標準偏差（母分散ベース）
	Scale []float64

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	err := scaler.Fit(X)
//	XScaled, err := scaler.Transform(X)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		state:    model.NewStateManager("StandardScaler"),
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は訓練データから統計情報（平均、標準偏差）を計算する
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	mean := make([]float64, c)
	scale := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		m, v := stat.PopMeanVariance(col, nil)
		if s.WithMean {
			mean[j] = m
		}
		scale[j] = 1.0
		if sd := math.Sqrt(v); s.WithStd && sd >= minScale {
			scale[j] = sd
		}
	}

	if err := s.state.MarkFitted(c, r); err != nil {
		return err
	}
	s.Mean, s.Scale = mean, scale
	return nil
}

// Transform は学習済みの統計情報を使ってデータを標準化する
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.state.RequireFitted("Transform"); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	if err := s.state.RequireInputDim("StandardScaler.Transform", c); err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(_, j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Scale[j]
	}, X)
	return result, nil
}

// TransformVec は1ケース分の入力を標準化して dst に書き込む。
// dst が nil なら新しく確保する。
func (s *StandardScaler) TransformVec(dst, x []float64) ([]float64, error) {
	if err := s.state.RequireFitted("TransformVec"); err != nil {
		return nil, err
	}
	if err := s.state.RequireInputDim("StandardScaler.TransformVec", len(x)); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = make([]float64, len(x))
	}
	for j, v := range x {
		dst[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return dst, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.state.RequireFitted("InverseTransform"); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	if err := s.state.RequireInputDim("StandardScaler.InverseTransform", c); err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(_, j int, v float64) float64 {
		return v*s.Scale[j] + s.Mean[j]
	}, X)
	return result, nil
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.state.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	nFeatures, _ := s.state.GetDimensions()
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_features=%d)",
		s.WithMean, s.WithStd, nFeatures)
}

var _ model.Transformer = (*StandardScaler)(nil)
