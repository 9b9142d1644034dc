// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"blueprintos/internal/models"
)

// ctxKey is unexported so no other package can collide with our context keys.
type ctxKey int

const workspaceKey ctxKey = iota

// WorkspaceResolver resolves an inbound hostname to a workspace, or nil
// when the host does not map to any active workspace.
type WorkspaceResolver interface {
	Resolve(ctx context.Context, hostname string) *models.Workspace
}

// Tenant resolves the request's Host header to a workspace and stores it
// in the request context. Requests for unknown hosts still pass through;
// handlers that require a workspace use WorkspaceFrom and respond 404.
func Tenant(resolver WorkspaceResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ws := resolver.Resolve(r.Context(), r.Host); ws != nil {
				r = r.WithContext(context.WithValue(r.Context(), workspaceKey, ws))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WorkspaceFrom returns the workspace resolved for this request, or nil
// if the host did not match one.
func WorkspaceFrom(ctx context.Context) *models.Workspace {
	ws, _ := ctx.Value(workspaceKey).(*models.Workspace)
	return ws
}
