package verify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySessionLifecycle(t *testing.T) {
	r := NewRegistry(ChecksumDecider{}, fastTiming)

	done := make(chan *Session, 1)
	sess := r.Create(3, 1, "3", func(s *Session) { done <- s })

	require.NotEmpty(t, sess.ID)
	assert.Equal(t, int64(3), sess.ItemID)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Same(t, sess, r.Get(sess.ID))
	assert.Nil(t, r.Get("missing"))

	require.NoError(t, sess.Machine.Start())

	select {
	case got := <-done:
		assert.Same(t, sess, got)
	case <-time.After(time.Second):
		t.Fatal("success handler never ran")
	}

	r.Remove(sess.ID)
	assert.Nil(t, r.Get(sess.ID))
}

func TestSessionResult(t *testing.T) {
	r := NewRegistry(ChecksumDecider{}, fastTiming)
	sess := r.Create(1, 1, "1", nil)

	claim, err := sess.Result()
	assert.Nil(t, claim)
	assert.NoError(t, err)

	wantErr := errors.New("completion failed")
	sess.SetError(wantErr)

	_, err = sess.Result()
	assert.ErrorIs(t, err, wantErr)
}

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry(ChecksumDecider{}, fastTiming)

	old := r.Create(1, 1, "1", nil)
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	fresh := r.Create(2, 1, "2", nil)

	removed := r.Sweep(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Nil(t, r.Get(old.ID))
	assert.Same(t, fresh, r.Get(fresh.ID))
}
