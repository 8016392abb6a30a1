package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLinks struct {
	linked map[string]bool
	err    error
	calls  int
}

func (f *fakeLinks) IsLinked(ctx context.Context, discordID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.linked[discordID], nil
}

func TestCheckAllowsOpenCommandsWithoutBackendCall(t *testing.T) {
	links := &fakeLinks{}
	gate := NewGate(links)

	for _, cmd := range []string{"faq", "status", "link", "leaderboard"} {
		dec, err := gate.Check(context.Background(), cmd, "d-1")
		require.NoError(t, err, cmd)
		assert.True(t, dec.Allowed, cmd)
		assert.Empty(t, dec.Reason, cmd)
	}
	assert.Zero(t, links.calls)
}

func TestCheckDeniesLinkedCommandForUnlinkedUser(t *testing.T) {
	links := &fakeLinks{linked: map[string]bool{}}
	gate := NewGate(links)

	for _, cmd := range []string{"point", "tierku", "upgrade", "misi", "unlink"} {
		dec, err := gate.Check(context.Background(), cmd, "d-1")
		require.NoError(t, err, cmd)
		assert.False(t, dec.Allowed, cmd)
		assert.NotEmpty(t, dec.Reason, cmd)
	}
}

func TestCheckAllowsLinkedCommandForLinkedUser(t *testing.T) {
	links := &fakeLinks{linked: map[string]bool{"d-1": true}}
	gate := NewGate(links)

	dec, err := gate.Check(context.Background(), "point", "d-1")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Empty(t, dec.Reason)
}

func TestCheckUnknownCommandIsAnError(t *testing.T) {
	gate := NewGate(&fakeLinks{})

	dec, err := gate.Check(context.Background(), "selfdestruct", "d-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selfdestruct")
	assert.False(t, dec.Allowed)
}

func TestCheckCollapsesTransportErrorToDenial(t *testing.T) {
	links := &fakeLinks{err: errors.New("connection refused")}
	gate := NewGate(links)

	dec, err := gate.Check(context.Background(), "point", "d-1")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.NotEmpty(t, dec.Reason)
}

func TestUserLevel(t *testing.T) {
	links := &fakeLinks{linked: map[string]bool{"d-linked": true}}
	gate := NewGate(links)

	assert.Equal(t, LevelLinked, gate.UserLevel(context.Background(), "d-linked"))
	assert.Equal(t, LevelUnlinked, gate.UserLevel(context.Background(), "d-other"))

	gate = NewGate(&fakeLinks{err: errors.New("timeout")})
	assert.Equal(t, LevelUnlinked, gate.UserLevel(context.Background(), "d-linked"))
}
