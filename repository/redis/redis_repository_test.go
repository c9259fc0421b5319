package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRepository_NoClient(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "search:version")
	assert.ErrorIs(t, err, ErrCacheMiss)

	var dest map[string]string
	assert.ErrorIs(t, repo.GetJSON(ctx, "search:x", &dest), ErrCacheMiss)
	assert.NoError(t, repo.SetJSON(ctx, "search:x", map[string]string{"a": "b"}, time.Minute))

	_, err = repo.GetSession(ctx, "jti")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, repo.SetSession(ctx, "jti", 1, time.Minute))
	assert.NoError(t, repo.DeleteSession(ctx, "jti"))
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr(goredis.Nil), ErrCacheMiss)
	other := errors.New("connection refused")
	assert.Equal(t, other, mapErr(other))
	assert.Equal(t, "session:abc", sessionKey("abc"))
}
