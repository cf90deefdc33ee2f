package hs

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

//////
// Configuration defaults and validation.
//////

// validate is the shared struct validator. validator.Validate is safe for
// concurrent use and caches struct metadata, so a single instance is enough.
var validate = validator.New()

// DefaultConfig returns a configuration with the classic harmony search
// parameters for the given number of dimensions.
//
// Defaults:
// - MemorySize: 30
// - HMCR: 0.8
// - PAR: 0.4
// - Bandwidth: 2
// - Iterations: 100000
// - Sampling: [0, 1)
// - Workers: 0 (sequential evaluation)
// - Rand: seeded from the wall clock
//
// Override Sampling (and usually Bandwidth with it) to match your search
// space before running.
func DefaultConfig(dimensions int) Config {
	return Config{
		Dimensions: dimensions,
		MemorySize: 30,
		HMCR:       0.8,
		PAR:        0.4,
		Bandwidth:  2,
		Iterations: 100000,
		Sampling:   Range[float64]{Min: 0, Max: 1},
		Workers:    0,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Validate checks the configuration eagerly, before any search work starts.
// It returns a descriptive error naming every invalid field, so a
// misconfigured run fails fast instead of silently misbehaving.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			messages := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				messages = append(messages, describeFieldError(fe))
			}

			return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
		}

		return fmt.Errorf("invalid config: %w", err)
	}

	// Cross-field constraint the struct tags cannot express.
	if c.Sampling.Min >= c.Sampling.Max {
		return fmt.Errorf(
			"invalid config: Sampling.Min (%v) must be less than Sampling.Max (%v)",
			c.Sampling.Min, c.Sampling.Max,
		)
	}

	return nil
}

// describeFieldError turns a single validator field error into a readable
// message.
func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag())
	}
}
