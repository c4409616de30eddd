package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := []Category{
		&Even{Choices: []string{"a"}},
		&Lru{Choices: []string{"a", "a"}},
		&Gaussian{StddevScalingFactor: 0.5, Choices: []string{"a"}},
		&Weighted{Choices: []WeightedChoice{{Name: "a", Weight: 0}, {Name: "b", Weight: 2}}},
		&Inventory{Choices: []InventoryChoice{{Name: "a", Tickets: 1}}},
		&Lottery{Choices: []LotteryChoice{{Name: "a", Tickets: 0}, {Name: "b", Tickets: 1}}},
	}
	for _, cat := range valid {
		assert.NoError(t, Validate("ok", cat), cat.Model())
	}

	invalid := map[string]Category{
		"empty even":         &Even{},
		"empty lru":          &Lru{Choices: []string{}},
		"zero factor":        &Gaussian{StddevScalingFactor: 0, Choices: []string{"a"}},
		"nan factor":         &Gaussian{StddevScalingFactor: math.NaN(), Choices: []string{"a"}},
		"all zero weights":   &Weighted{Choices: []WeightedChoice{{Name: "a"}}},
		"spent inventory":    &Inventory{Choices: []InventoryChoice{{Name: "a"}, {Name: "b"}}},
		"ticketless lottery": &Lottery{Choices: []LotteryChoice{{Name: "a", Weight: 3}}},
	}
	for name, cat := range invalid {
		t.Run(name, func(t *testing.T) {
			err := Validate("bad", cat)
			require.ErrorIs(t, err, ErrInvalidCategory)
			assert.Contains(t, err.Error(), `"bad"`)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	err := Validate("g", &Gaussian{StddevScalingFactor: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choices must not be empty")
	assert.Contains(t, err.Error(), "stddev_scaling_factor")
}
