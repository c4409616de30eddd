package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid category")

// Validate checks that a category can be picked from. It reports every
// problem it finds in one error wrapping ErrInvalidCategory.
//
// A category that loads fine may still fail here, e.g. an inventory whose
// tickets are all spent.
func Validate(name string, cat Category) error {
	var errs []string

	if cat.Len() == 0 {
		errs = append(errs, "choices must not be empty")
	}

	switch c := cat.(type) {
	case *Gaussian:
		f := c.StddevScalingFactor
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			errs = append(errs, "stddev_scaling_factor must be a finite number > 0")
		}
	case *Weighted:
		if len(c.Choices) > 0 && !anyNonZero(c.Choices, func(w WeightedChoice) uint64 { return w.Weight }) {
			errs = append(errs, "at least one choice must have weight > 0")
		}
	case *Inventory:
		if len(c.Choices) > 0 && !anyNonZero(c.Choices, func(i InventoryChoice) uint64 { return i.Tickets }) {
			errs = append(errs, "at least one choice must have tickets > 0")
		}
	case *Lottery:
		if len(c.Choices) > 0 && !anyNonZero(c.Choices, func(l LotteryChoice) uint64 { return l.Tickets }) {
			errs = append(errs, "at least one choice must have tickets > 0")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidCategory, name, strings.Join(errs, "; "))
	}
	return nil
}

func anyNonZero[T any](choices []T, value func(T) uint64) bool {
	for _, c := range choices {
		if value(c) > 0 {
			return true
		}
	}
	return false
}
