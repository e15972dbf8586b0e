package linear

// Option は LinearRegression の設定を変更する関数
type Option func(*LinearRegression)

// WithFitIntercept は切片を推定するかどうかを設定する
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// WithTol は最小二乗解の特異値打ち切り比率を設定する
func WithTol(tol float64) Option {
	return func(lr *LinearRegression) {
		lr.tol = tol
	}
}
