//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"25", 25, false},
		{" 39.90 ", 39.9, false},
		{"39,90", 39.9, false},
		{"00", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-10", 0, true},
		{"1e", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"+Inf", 0, true},
		{"-inf", 0, true},
		{"1e400", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCanCreateHaircut(t *testing.T) {
	assert.True(t, CanCreateHaircut(false, 0))
	assert.True(t, CanCreateHaircut(false, FreePlanHaircutLimit-1))
	assert.False(t, CanCreateHaircut(false, FreePlanHaircutLimit))
	assert.True(t, CanCreateHaircut(true, 50))
}

func TestFilterHaircutsByStatus(t *testing.T) {
	in := []Haircut{
		{ID: "1", Status: true},
		{ID: "2", Status: false},
		{ID: "3", Status: true},
	}

	active := FilterHaircutsByStatus(in, true)
	require.Len(t, active, 2)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "3", active[1].ID)

	inactive := FilterHaircutsByStatus(in, false)
	require.Len(t, inactive, 1)
	assert.Equal(t, "2", inactive[0].ID)

	assert.Empty(t, FilterHaircutsByStatus(nil, true))
}

func TestWithoutSchedule(t *testing.T) {
	list := []Schedule{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out, found := WithoutSchedule(list, "b")
	assert.True(t, found)
	assert.Equal(t, []Schedule{{ID: "a"}, {ID: "c"}}, out)
	assert.Len(t, list, 3, "input must not be modified")

	_, found = WithoutSchedule(list, "zzz")
	assert.False(t, found)
}
