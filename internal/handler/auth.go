package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/talait/translate-api/internal/model"
	"github.com/talait/translate-api/internal/service"
)

// AuthHandler handles HTTP requests for registration, login and user listing.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRoot handles GET / requests.
func (h *AuthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Hello talAIt Platforme Translate !!"})
}

// HandleListUsers handles GET /users requests.
func (h *AuthHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if users == nil {
		users = []model.UserResponse{}
	}
	writeJSON(w, http.StatusOK, users)
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUsernameTaken):
			writeJSON(w, http.StatusBadRequest, errorResponse("username already registered"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /login requests. Credentials arrive form-encoded.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid form body"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	resp, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusBadRequest, errorResponse("user not found"))
		case errors.Is(err, service.ErrWrongPassword):
			writeJSON(w, http.StatusBadRequest, errorResponse("incorrect password"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
