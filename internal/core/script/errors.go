package script

import "errors"

var (
	// Load errors

	ErrUnknownConstant    = errors.New("unknown vector constant")
	ErrTooManyComponents  = errors.New("vector literal has more than 3 components")
	ErrInvalidValue       = errors.New("value must be a number, a constant name or a list of numbers")
	ErrMissingStart       = errors.New("script has no start vector")
	ErrStartNotVector     = errors.New("start must be a vector")
	ErrUnknownOp          = errors.New("unknown operation")
	ErrVectorArgRequired  = errors.New("operation requires a vector argument")
	ErrExpectNotVector    = errors.New("expected value must be a vector")
	ErrNegativeEpsilon    = errors.New("epsilon must be non-negative")
	ErrNoQueryForExpected = errors.New("expected scalar but script has no query step")
	ErrWorldRequired      = errors.New("operation requires a world section")
	ErrWorldNotVector     = errors.New("world fields other than restitution and cell_size must be vectors")
	ErrInvalidRestitution = errors.New("world restitution must be non-negative")
	ErrInvalidStep        = errors.New("step takes a positive dt and an optional positive integer count")

	// Run errors

	ErrExpectationFailed = errors.New("expectation failed")
)
