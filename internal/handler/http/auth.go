package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/utils"
	"github.com/pzawadzki/filmoteka-auth/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeDetail(w, detailInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeDetail(w, detailInvalidJSON, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.AuthService.CreateUser(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation failed")
		writeError(w, err)
		return
	}

	log.Info().Str("username", createdUser.Username).Strs("roles", createdUser.Roles).Msg("user created")

	utils.WriteJSON(w, models.UserDisplay{
		Username: createdUser.Username,
		Roles:    createdUser.Roles,
	}, http.StatusCreated)
}

// userDetails reports the identity and roles of the authenticated caller,
// derived entirely from the token claims: the user record is not re-fetched,
// so the response reflects the roles snapshot taken at issuance time.
func (h *Handler) userDetails(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, ok := utils.TokenFromContext(r.Context())
	if !ok {
		log.Err(ErrNoTokenInContext).Send()
		writeDetail(w, detailNotAuthenticated, http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, models.UserDisplay{
		Username: token.Username,
		Roles:    token.Roles,
	}, http.StatusOK)
}

func (h *Handler) protectedResource(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, ok := utils.TokenFromContext(r.Context())
	if !ok {
		log.Err(ErrNoTokenInContext).Send()
		writeDetail(w, detailNotAuthenticated, http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Witaj %s, masz dostęp do tego zasobu!", token.Username),
	}, http.StatusOK)
}
