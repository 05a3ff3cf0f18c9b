// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, authorization, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"errors"
	"net/http"

	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/service"
	"github.com/pzawadzki/filmoteka-auth/internal/utils"
	"github.com/pzawadzki/filmoteka-auth/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and on success
// stores the verified token in the request context so downstream
// handlers can read the claims without re-parsing.
//
// Rejections:
//   - absent or unparseable "Authorization" header → 403 "Not authenticated"
//   - expired token → 401 "Token wygasł" with a WWW-Authenticate: Bearer hint
//   - forged or malformed token → 401 "Nie można zweryfikować poświadczeń"
//     with the same hint
//
// Expiry and tampering are reported to callers only as these coarse
// categories; the precise internal kind is preserved in the logs by the
// service layer.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeDetail(w, detailNotAuthenticated, http.StatusForbidden)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeDetail(w, detailNotAuthenticated, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")

			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				writeDetail(w, detailTokenExpired, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				writeDetail(w, detailCannotVerifyCredentials, http.StatusUnauthorized)
				return
			}
		}

		// Store the verified token in the context so that downstream
		// handlers can read the claims without re-parsing it.
		next.ServeHTTP(w, r.WithContext(utils.ContextWithToken(ctx, &token)))
	})
}

// requireRole returns a middleware that admits only callers whose token
// carries the exact role label. Roles are flat: holding RoleAdmin does not
// imply RoleUser, and vice versa. The middleware composes with [Handler.auth],
// which must run earlier in the chain.
func (h *Handler) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			token, ok := utils.TokenFromContext(r.Context())
			if !ok {
				log.Err(ErrNoTokenInContext).Send()
				writeDetail(w, detailNotAuthenticated, http.StatusForbidden)
				return
			}

			if !token.HasRole(role) {
				log.Warn().
					Str("username", token.Username).
					Strs("roles", token.Roles).
					Str("required_role", role).
					Msg("insufficient role")
				writeDetail(w, forbiddenDetail(role), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// forbiddenDetail returns the user-facing message for a failed role check.
func forbiddenDetail(role string) string {
	if role == models.RoleAdmin {
		return detailAdminRequired
	}
	return detailInsufficientRole
}
