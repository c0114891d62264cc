package citest

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianContract implements Contract over continuous tabular data under a
// linear-Gaussian assumption, the sample-based counterpart to the oracle
// adapter. Conditional independence is tested via partial correlation and
// Fisher's z-transform.
//
// Columns holds one []float64 per observed variable, all the same length;
// column i corresponds to vertex index i. N is the observation count.
type GaussianContract struct {
	columns [][]float64
	n       int
}

// NewGaussianContract builds a GaussianContract over columns, validating that
// every column has the same length and that at least two observations are
// present.
func NewGaussianContract(columns [][]float64) (*GaussianContract, error) {
	if len(columns) == 0 {
		return nil, citestErrorf("NewGaussianContract", ErrInsufficientObservations)
	}
	n := len(columns[0])
	if n < 2 {
		return nil, citestErrorf("NewGaussianContract", ErrInsufficientObservations)
	}
	for _, col := range columns {
		if len(col) != n {
			return nil, citestErrorf("NewGaussianContract", ErrOracleBadFormat)
		}
	}

	return &GaussianContract{columns: columns, n: n}, nil
}

func (g *GaussianContract) column(op string, v int) ([]float64, error) {
	if v < 0 || v >= len(g.columns) {
		return nil, citestErrorf(op, ErrOutOfRange)
	}

	return g.columns[v], nil
}

// Indep implements Contract via zero-order Pearson correlation (Z is empty).
func (g *GaussianContract) Indep(x, y int, level float64) (bool, error) {
	return g.CondIndep(x, y, nil, level)
}

// CondIndep implements Contract via the partial correlation of X_x and X_y
// given X_z, tested against level using Fisher's z-transform.
//
// The conditioning set's size is bounded by N-4 (the degrees of freedom of
// the z-statistic must stay positive); a larger set returns
// ErrInsufficientObservations rather than producing a NaN statistic.
func (g *GaussianContract) CondIndep(x, y int, z []int, level float64) (bool, error) {
	if x == y {
		return false, citestErrorf("CondIndep", ErrSameVertex)
	}
	xCol, err := g.column("CondIndep", x)
	if err != nil {
		return false, err
	}
	yCol, err := g.column("CondIndep", y)
	if err != nil {
		return false, err
	}
	zCols := make([][]float64, len(z))
	for i, v := range z {
		col, err := g.column("CondIndep", v)
		if err != nil {
			return false, err
		}
		zCols[i] = col
	}

	df := g.n - len(z) - 3
	if df <= 0 {
		return false, citestErrorf("CondIndep", ErrInsufficientObservations)
	}

	r, err := g.partialCorrelation(xCol, yCol, zCols)
	if err != nil {
		return false, citestErrorf("CondIndep", err)
	}

	// Fisher z-transform: z = sqrt(df) * atanh(r); under H0 (r=0), z ~ N(0,1).
	zStat := math.Sqrt(float64(df)) * math.Atanh(clampCorrelation(r))
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	pValue := 2 * (1 - normal.CDF(math.Abs(zStat)))

	return pValue >= level, nil
}

// clampCorrelation guards atanh against +/-1, which otherwise diverges to
// +/-Inf for perfectly (anti)correlated columns.
func clampCorrelation(r float64) float64 {
	const eps = 1e-12
	if r >= 1 {
		return 1 - eps
	}
	if r <= -1 {
		return -1 + eps
	}

	return r
}

// partialCorrelation computes corr(x, y | z) from the correlation matrix of
// {x, y} union z via its inverse (the precision matrix): for standardized
// variables, partial correlation rho_ij|rest = -P[i][j] / sqrt(P[i][i]*P[j][j])
// where P is the precision matrix. With no conditioning set this reduces to
// plain Pearson correlation.
func (g *GaussianContract) partialCorrelation(x, y []float64, z [][]float64) (float64, error) {
	if len(z) == 0 {
		return stat.Correlation(x, y, nil), nil
	}

	vars := make([][]float64, 0, len(z)+2)
	vars = append(vars, x, y)
	vars = append(vars, z...)
	m := len(vars)

	corr := make([]float64, m*m)
	for i := 0; i < m; i++ {
		corr[i*m+i] = 1
		for j := i + 1; j < m; j++ {
			r := stat.Correlation(vars[i], vars[j], nil)
			corr[i*m+j] = r
			corr[j*m+i] = r
		}
	}

	precision, err := inverse(corr, m)
	if err != nil {
		return 0, err
	}

	denom := math.Sqrt(precision[0*m+0] * precision[1*m+1])
	if denom == 0 {
		return 0, ErrSingularCorrelation
	}

	return -precision[0*m+1] / denom, nil
}
