package match3

import "errors"

// ErrConfiguration is the root of every error that prevents a board from
// being built. Callers can test for it with errors.Is.
var ErrConfiguration = errors.New("match3: invalid configuration")

var (
	ErrInvalidDimensions = configError("grid dimensions must be positive")
	ErrRaggedRows        = configError("grid rows have mismatched length")
	ErrNoKindSource      = configError("kind source is required")
	ErrEmptyCatalog      = configError("catalog has no item kinds")
	ErrDuplicateKind     = configError("catalog has duplicate item kind")
	ErrNegativeSteps     = configError("step budget must not be negative")
)

type configErr struct {
	msg string
}

func configError(msg string) error {
	return &configErr{msg: msg}
}

func (e *configErr) Error() string {
	return "match3: " + e.msg
}

// Unwrap lets errors.Is(err, ErrConfiguration) hold for every configuration error.
func (e *configErr) Unwrap() error {
	return ErrConfiguration
}
