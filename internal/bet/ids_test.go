package bet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueToken_HexOfRequestedSize(t *testing.T) {
	tok, err := UniqueToken(RoomIDBytes, func(string) bool { return false })
	require.NoError(t, err)
	assert.Len(t, tok, RoomIDBytes*2)

	tok, err = UniqueToken(PlayerIDBytes, func(string) bool { return false })
	require.NoError(t, err)
	assert.Len(t, tok, PlayerIDBytes*2)
}

func TestUniqueToken_RetriesOnCollision(t *testing.T) {
	rejected := 0
	tok, err := UniqueToken(4, func(string) bool {
		if rejected < 3 {
			rejected++
			return true
		}
		return false
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, 3, rejected)
}

func TestUniqueToken_ExhaustionIsAnError(t *testing.T) {
	_, err := UniqueToken(1, func(string) bool { return true })
	assert.ErrorIs(t, err, ErrTokenExhausted)
}
