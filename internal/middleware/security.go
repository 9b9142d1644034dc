// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders hardens every response served off a coach hostname.
// Landing pages render markdown-derived HTML on arbitrary subdomains
// and custom domains, so MIME-sniffing and framing are locked down
// across the board rather than per route.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Never let the browser second-guess the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// Coach pages may embed their own content, but no other origin
		// gets to frame a tenant's landing page.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// The legacy XSS filter is off; the markdown renderer already
		// strips raw HTML before it reaches a page.
		h.Set("X-XSS-Protection", "0")

		// Keep full referrer URLs within the same origin only.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Opt tenants out of interest cohort tracking.
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
