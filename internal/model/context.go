package model

import (
	"context"
)

type ContextManager interface {
	SetSessionToContext(ctx context.Context, claim SessionClaim) context.Context
	GetSessionFromContext(ctx context.Context) (SessionClaim, bool)
}
