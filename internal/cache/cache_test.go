package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestClient_SetGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	assert.NoError(t, c.Delete(ctx, "k"))

	got, err = c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_MissBehavesAsNil(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)

	got, err := c.Get(context.Background(), "absent")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_NilClientIsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
}

func TestClient_UnreachableBackendFailsSafe(t *testing.T) {
	// Nothing listens on this address; every call should degrade to a miss.
	c := New("127.0.0.1:1", "", 0)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Delete(ctx, "k"))
}
