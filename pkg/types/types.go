package types

import "github.com/pkg/errors"

const (
	// TradingDaysPerYear is the factor used to scale annualized drift and
	// volatility down to daily values. Public equity markets trade roughly
	// 252 days per year.
	TradingDaysPerYear = 252
)

// ErrInvalidParameter is the root cause of every validation failure in this
// repository. Calculations are pure, so a call either runs with valid inputs
// or fails with an error wrapping this sentinel before any work is done.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterf wraps ErrInvalidParameter with a formatted description of
// the offending input.
func InvalidParameterf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
