package handlers

import (
	"context"
	"time"

	"volunteerhub/middleware"
	"volunteerhub/store"
)

// Handler owns the store and token service for every route. Constructed
// once in main and shared across requests.
type Handler struct {
	store store.Store
	auth  *middleware.Auth
}

func New(st store.Store, auth *middleware.Auth) *Handler {
	return &Handler{store: st, auth: auth}
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
