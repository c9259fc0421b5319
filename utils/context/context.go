package context

import (
	"context"

	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// WithActor stores the caller with its admin flag. It also sets the user id
// so GetUserID keeps working downstream.
func WithActor(ctx context.Context, actor model.Actor) context.Context {
	ctx = WithUserID(ctx, actor.UserID)
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetActor(ctx context.Context) (model.Actor, bool) {
	a, ok := ctx.Value(constant.ActorKey).(model.Actor)
	return a, ok
}
