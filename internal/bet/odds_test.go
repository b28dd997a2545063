package bet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamWith(t *testing.T, name string, amounts ...int) *Team {
	t.Helper()
	tm := NewTeam(name)
	for i, amount := range amounts {
		tm.SetWager(PlayerID(rune('a'+i)), amount)
	}
	return tm
}

func TestComputeOdds(t *testing.T) {
	cases := []struct {
		name string
		a    []int
		b    []int
		want float64
	}{
		{name: "simple ratio", a: []int{100}, b: []int{300}, want: 3},
		{name: "rounded to two decimals", a: []int{3}, b: []int{7}, want: 2.33},
		{name: "equal pools", a: []int{30}, b: []int{10, 20}, want: 1},
		{name: "empty side is sentinel", a: []int{50}, b: nil, want: 0},
		{name: "both empty is sentinel", a: nil, b: nil, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := teamWith(t, "Red", tc.a...)
			b := teamWith(t, "Blue", tc.b...)
			assert.Equal(t, tc.want, ComputeOdds(a, b))
			// symmetric in its arguments
			assert.Equal(t, ComputeOdds(a, b), ComputeOdds(b, a))
		})
	}
}

func TestTeam_SumAndClear(t *testing.T) {
	tm := teamWith(t, "Red", 10, 20, 30)
	assert.Equal(t, 60, tm.Sum())

	tm.RemoveWager(PlayerID('a'))
	assert.Equal(t, 50, tm.Sum())
	assert.False(t, tm.HasWager(PlayerID('a')))

	tm.Clear()
	assert.Equal(t, 0, tm.Sum())
}

func TestTeam_WagersReturnsCopy(t *testing.T) {
	tm := teamWith(t, "Red", 10)
	w := tm.Wagers()
	w[PlayerID('a')] = 999
	require.Equal(t, 10, tm.Sum())
}
