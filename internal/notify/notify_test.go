package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRaiseReplacesActive(t *testing.T) {
	t.Parallel()

	var c Channel
	_, seq1 := c.Raise("first", KindSuccess)
	n2, seq2 := c.Raise("second", KindError)
	require.Greater(t, seq2, seq1)

	active, ok := c.Active()
	require.True(t, ok)
	require.Equal(t, n2.Message, active.Message)
	require.Equal(t, KindError, active.Kind)
}

func TestStaleExpiryIsIgnored(t *testing.T) {
	t.Parallel()

	var c Channel
	_, seq1 := c.Raise("first", KindSuccess)
	_, seq2 := c.Raise("second", KindSuccess)

	// The first notification's timer fires after it was replaced; the
	// replacement must keep showing.
	require.False(t, c.Expire(seq1))
	active, ok := c.Active()
	require.True(t, ok)
	require.Equal(t, "second", active.Message)

	require.True(t, c.Expire(seq2))
	_, ok = c.Active()
	require.False(t, ok)
}

func TestExpireOnEmptyChannel(t *testing.T) {
	t.Parallel()

	var c Channel
	require.False(t, c.Expire(0))
	require.False(t, c.Expire(1))
}
