package context

import (
	"context"
	"testing"

	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	_, ok := GetUserID(context.Background())
	assert.False(t, ok)

	id, ok := GetUserID(WithUserID(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, uint64(7), id)
}

func TestActor(t *testing.T) {
	_, ok := GetActor(WithUserID(context.Background(), 7))
	assert.False(t, ok)

	ctx := WithActor(context.Background(), model.Actor{UserID: 3, IsAdmin: true})
	a, ok := GetActor(ctx)
	assert.True(t, ok)
	assert.True(t, a.IsAdmin)

	id, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), id)
}
