package montecarlo

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/types"
)

// Asset is one position in a simulated basket. ExpectedReturn and Volatility
// are annualized, InitialValue is the dollar exposure at time zero.
type Asset struct {
	Name           string  `json:"name" yaml:"name"`
	InitialValue   float64 `json:"initialValue" yaml:"initialValue"`
	ExpectedReturn float64 `json:"expectedReturn" yaml:"expectedReturn"`
	Volatility     float64 `json:"volatility" yaml:"volatility"`
}

func (a Asset) Validate() error {
	if a.Name == "" {
		return types.InvalidParameterf("asset name must not be empty")
	}
	if a.InitialValue <= 0 {
		return types.InvalidParameterf("asset %s: initial value must be positive, got %f", a.Name, a.InitialValue)
	}
	if a.Volatility < 0 {
		return types.InvalidParameterf("asset %s: volatility must not be negative, got %f", a.Name, a.Volatility)
	}
	return nil
}

// AssetSet is an ordered basket of assets. The slice order fixes the asset
// ordering used for the correlation matrix, the covariance matrix and the
// joint draws.
type AssetSet []Asset

func (s AssetSet) Validate() error {
	if len(s) == 0 {
		return types.InvalidParameterf("asset set must not be empty")
	}

	seen := make(map[string]struct{}, len(s))
	for _, a := range s {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, ok := seen[a.Name]; ok {
			return types.InvalidParameterf("duplicated asset name %s", a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}

func (s AssetSet) Names() []string {
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.Name
	}
	return names
}

func (s AssetSet) TotalInitialValue() (total float64) {
	for _, a := range s {
		total += a.InitialValue
	}
	return total
}

type assetPair struct {
	a, b string
}

// Correlations maps unordered asset name pairs to correlation coefficients.
// Pairs that were never set default to 0, and the self correlation is always 1.
type Correlations struct {
	coefficients map[assetPair]float64
}

func NewCorrelations() *Correlations {
	return &Correlations{coefficients: make(map[assetPair]float64)}
}

func (c *Correlations) Set(a, b string, coefficient float64) error {
	if a == b {
		return types.InvalidParameterf("self correlation of %s is fixed at 1", a)
	}
	if coefficient < -1 || coefficient > 1 {
		return types.InvalidParameterf("correlation of (%s, %s) must be inside [-1, 1], got %f", a, b, coefficient)
	}

	c.coefficients[assetPair{a, b}] = coefficient
	return nil
}

// Get looks up the coefficient for an unordered pair, checking both orders.
func (c *Correlations) Get(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if v, ok := c.coefficients[assetPair{a, b}]; ok {
		return v
	}
	if v, ok := c.coefficients[assetPair{b, a}]; ok {
		return v
	}
	return 0.0
}

// PortfolioParameters describes a correlated multi-asset run. Initial values,
// drifts and volatilities come from the AssetSet.
type PortfolioParameters struct {
	HorizonDays int
	PathCount   int
	Percentile  float64
	Seed        int64
}

func (p PortfolioParameters) Validate() error {
	if p.HorizonDays <= 0 {
		return types.InvalidParameterf("horizon days must be positive, got %d", p.HorizonDays)
	}
	if p.PathCount <= 0 {
		return types.InvalidParameterf("path count must be positive, got %d", p.PathCount)
	}
	if p.Percentile <= 0 || p.Percentile >= 100 {
		return types.InvalidParameterf("percentile must be inside (0, 100), got %f", p.Percentile)
	}
	return nil
}

// PortfolioResult is the outcome of a correlated basket run: one path matrix
// per asset, the aggregate portfolio matrix (elementwise sum of the per-asset
// dollar exposures) and the terminal statistics of the aggregate.
type PortfolioResult struct {
	Assets     AssetSet
	Parameters PortfolioParameters

	AssetPaths     map[string]PricePathMatrix
	PortfolioPaths PricePathMatrix

	InitialValue   float64
	TerminalValues floats.Slice

	Mean            float64
	Median          float64
	Min             float64
	Max             float64
	PercentileValue float64

	PotentialLoss           float64
	PotentialLossPercentage float64
}

// SimulatePortfolio generates jointly correlated GBM paths for a basket of
// assets. Daily returns are drawn from a multivariate normal distribution
// whose covariance is the outer product of the daily volatilities scaled by
// the pairwise correlations. The generator is seeded from Parameters.Seed and
// draws in a fixed order (time step, then path, then asset), so runs are
// reproducible.
func SimulatePortfolio(assets AssetSet, correlations *Correlations, params PortfolioParameters) (*PortfolioResult, error) {
	if err := assets.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if correlations == nil {
		correlations = NewCorrelations()
	}

	n := len(assets)
	dailyDrifts := make([]float64, n)
	dailyVols := make([]float64, n)
	for i, a := range assets {
		dailyDrifts[i] = a.ExpectedReturn / types.TradingDaysPerYear
		dailyVols[i] = a.Volatility / math.Sqrt(types.TradingDaysPerYear)
	}

	cov := covarianceMatrix(assets.Names(), dailyVols, correlations)
	transform, err := covarianceTransform(cov)
	if err != nil {
		return nil, err
	}

	assetPaths := make(map[string]PricePathMatrix, n)
	for _, a := range assets {
		assetPaths[a.Name] = newPathMatrix(params.HorizonDays, params.PathCount, a.InitialValue)
	}

	var (
		rnd        = rand.New(rand.NewSource(params.Seed))
		z          = make([]float64, n)
		correlated = make([]float64, n)
	)
	for t := 1; t <= params.HorizonDays; t++ {
		for p := 0; p < params.PathCount; p++ {
			for i := range z {
				z[i] = rnd.NormFloat64()
			}
			applyTransform(correlated, transform, z, dailyDrifts)

			for i, a := range assets {
				paths := assetPaths[a.Name]
				paths[t][p] = paths[t-1][p] * math.Exp(correlated[i])
			}
		}
	}

	portfolioPaths := newPathMatrix(params.HorizonDays, params.PathCount, 0)
	for _, a := range assets {
		paths := assetPaths[a.Name]
		for t := range portfolioPaths {
			for p := range portfolioPaths[t] {
				portfolioPaths[t][p] += paths[t][p]
			}
		}
	}

	result := &PortfolioResult{
		Assets:         assets,
		Parameters:     params,
		AssetPaths:     assetPaths,
		PortfolioPaths: portfolioPaths,
		InitialValue:   assets.TotalInitialValue(),
		TerminalValues: portfolioPaths.TerminalValues(),
	}
	result.summarize(params.Percentile)
	return result, nil
}

func (r *PortfolioResult) summarize(percentile float64) {
	r.Mean = r.TerminalValues.Mean()
	r.Median = r.TerminalValues.Median()
	r.Min = r.TerminalValues.Min()
	r.Max = r.TerminalValues.Max()
	r.PercentileValue = r.TerminalValues.Percentile(percentile)
	r.PotentialLoss = r.InitialValue - r.PercentileValue
	r.PotentialLossPercentage = percentOf(r.PotentialLoss, r.InitialValue)
}

// CorrelationMatrix builds the symmetric correlation matrix for the given
// asset ordering: ones on the diagonal, pairwise lookups elsewhere.
func CorrelationMatrix(names []string, correlations *Correlations) *mat.SymDense {
	n := len(names)
	corr := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		corr.SetSym(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			corr.SetSym(i, j, correlations.Get(names[i], names[j]))
		}
	}
	return corr
}

func covarianceMatrix(names []string, dailyVols []float64, correlations *Correlations) *mat.SymDense {
	n := len(names)
	corr := CorrelationMatrix(names, correlations)
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, dailyVols[i]*dailyVols[j]*corr.At(i, j))
		}
	}
	return cov
}

// covarianceTransform factorizes the covariance matrix into a linear
// transform A with A*Aᵀ = cov, via symmetric eigendecomposition. Unlike a
// Cholesky factorization this tolerates positive semi-definite matrices, e.g.
// a basket with a correlation of exactly 1 or -1. A matrix with a genuinely
// negative eigenvalue is rejected as an invalid correlation specification.
func covarianceTransform(cov *mat.SymDense) (*mat.Dense, error) {
	n := cov.Symmetric()

	var eig mat.EigenSym
	if ok := eig.Factorize(cov, true); !ok {
		return nil, types.InvalidParameterf("eigendecomposition of the covariance matrix failed")
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	values := eig.Values(nil)

	tol := 1e-9 * float64(n)
	transform := mat.NewDense(n, n, nil)
	for j, v := range values {
		if v < -tol {
			return nil, types.InvalidParameterf("correlation matrix is not positive semi-definite (eigenvalue %g)", v)
		}
		if v < 0 {
			v = 0
		}

		scale := math.Sqrt(v)
		for i := 0; i < n; i++ {
			transform.Set(i, j, vectors.At(i, j)*scale)
		}
	}
	return transform, nil
}

// applyTransform computes dst = drift + transform * z.
func applyTransform(dst []float64, transform *mat.Dense, z, drift []float64) {
	n := len(dst)
	for i := 0; i < n; i++ {
		sum := drift[i]
		for j := 0; j < n; j++ {
			sum += transform.At(i, j) * z[j]
		}
		dst[i] = sum
	}
}
