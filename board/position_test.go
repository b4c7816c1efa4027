package board

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrantSpaces(t *testing.T) {
	tt := []struct {
		q          Quadrant
		start, end int
	}{
		{A, 1, 50},
		{B, 15, 8},
		{C, 29, 22},
		{D, 43, 36},
	}

	for _, tc := range tt {
		t.Run(string(tc.q), func(t *testing.T) {
			assert.Equal(t, tc.start, tc.q.StartSpace())
			assert.Equal(t, tc.end, tc.q.EndSpace())
		})
	}
}

func TestParseQuadrant(t *testing.T) {
	q, err := ParseQuadrant("C")
	require.NoError(t, err)
	assert.Equal(t, C, q)

	for _, bad := range []string{"", "a", "E", "AB"} {
		_, err := ParseQuadrant(bad)
		assert.True(t, errors.Is(err, ErrInvalidQuadrant), "expected %q to be rejected", bad)
	}
}

func TestSpaceName(t *testing.T) {
	tt := []struct {
		name  string
		q     Quadrant
		steps int
		want  string
	}{
		{"home yard", A, -1, "H"},
		{"ready", B, 0, "R"},
		{"first track step for A", A, 1, "1"},
		{"first track step for B", B, 1, "15"},
		{"last track step for A", A, 50, "50"},
		{"track wraps for B", B, 42, "0"},
		{"track wraps for D", D, 20, "6"},
		{"home row for A", A, 53, "A3"},
		{"last home row space for C", C, 56, "C6"},
		{"end", D, 57, "E"},
		{"overshoot is off the board", A, 61, ""},
		{"below home yard is off the board", A, -2, ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SpaceName(tc.q, tc.steps))
		})
	}
}

func TestEveryStepCountHasExactlyOneCategory(t *testing.T) {
	for _, q := range Quadrants {
		for steps := HomeYardSteps; steps <= EndSteps; steps++ {
			t.Run(fmt.Sprintf("%s/%d", q, steps), func(t *testing.T) {
				kind, ok := KindOf(steps)
				require.True(t, ok)

				pos, err := PositionAt(q, steps)
				require.NoError(t, err)
				assert.Equal(t, kind, pos.Kind)
				assert.Equal(t, steps, pos.Steps(q), "round trip through %s", pos)

				again, err := PositionAt(q, pos.Steps(q))
				require.NoError(t, err)
				assert.Equal(t, pos, again)
			})
		}
	}
}

func TestPositionAtRejectsOffBoardSteps(t *testing.T) {
	for _, steps := range []int{-2, 58, 63} {
		_, err := PositionAt(A, steps)
		assert.True(t, errors.Is(err, ErrStepOutOfRange))
	}
}

func TestOnlyTrackPositionsAreCapturable(t *testing.T) {
	for steps := HomeYardSteps; steps <= EndSteps; steps++ {
		pos, err := PositionAt(B, steps)
		require.NoError(t, err)
		assert.Equal(t, steps >= FirstTrackStep && steps <= LastTrackStep, pos.Capturable(), "steps %d", steps)
	}
}

func TestSharedSlotsCoincideAcrossQuadrants(t *testing.T) {
	// A at step 20 and B at step 6 sit on the same absolute slot
	assert.Equal(t, SpaceName(A, 20), SpaceName(B, 6))
	// home rows never coincide
	assert.NotEqual(t, SpaceName(A, 53), SpaceName(B, 53))
}

func TestTokenOther(t *testing.T) {
	assert.Equal(t, TokenQ, TokenP.Other())
	assert.Equal(t, TokenP, TokenQ.Other())

	_, err := ParseToken("r")
	assert.Error(t, err)
}
