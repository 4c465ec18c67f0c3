package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealPeriod(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Breakfast"},
		{5, "Breakfast"},
		{10, "Breakfast"},
		{11, "Lunch"},
		{15, "Lunch"},
		{16, "Dinner"},
		{22, "Dinner"},
		{23, "Breakfast"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, MealPeriod(tc.hour), "hour %d", tc.hour)
	}
}
