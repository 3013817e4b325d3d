package gym

import (
	"errors"
	"fmt"

	"github.com/evanbrierton/barium-core/core"
)

// ErrImpossibleRequirement is the sentinel behind every
// ImpossibleRequirementError; use errors.Is to detect it without depending
// on the wrapped Requirement value.
var ErrImpossibleRequirement = errors.New("gym: requirement cannot be realized")

// ErrInvalidConfiguration is the sentinel behind every
// InvalidConfigurationError: a requirement named a bar kind with zero bars
// in the constructed inventory, a construction-time inconsistency rather
// than an ordinary infeasible target.
var ErrInvalidConfiguration = errors.New("gym: invalid configuration")

// ImpossibleRequirementError reports the first Requirement Plan could not
// realize — either no Loading reaches its target weight, or the DP could
// not connect it to the previous requirement's candidates.
type ImpossibleRequirementError struct {
	Requirement core.Requirement
}

func (e *ImpossibleRequirementError) Error() string {
	return fmt.Sprintf("%s: %s", ErrImpossibleRequirement, e.Requirement)
}

// Unwrap lets errors.Is(err, ErrImpossibleRequirement) succeed.
func (e *ImpossibleRequirementError) Unwrap() error { return ErrImpossibleRequirement }

// InvalidConfigurationError reports a Requirement whose bar kind has no
// bars at all in the Gym's inventory — distinct from ImpossibleRequirement,
// which means bars of the right kind exist but none reach the target.
type InvalidConfigurationError struct {
	Requirement core.Requirement
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, e.Requirement)
}

// Unwrap lets errors.Is(err, ErrInvalidConfiguration) succeed.
func (e *InvalidConfigurationError) Unwrap() error { return ErrInvalidConfiguration }
