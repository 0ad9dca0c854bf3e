package core

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iqbal-singh-1/ideathon/internal/middleware"
	"github.com/iqbal-singh-1/ideathon/internal/models"
	"github.com/iqbal-singh-1/ideathon/internal/validation"
)

type Service interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, uid, password string) (*models.AuthResponse, error)
	Me(ctx context.Context, uid string) (*models.User, error)
}

type Handler struct {
	svc    Service
	logger *slog.Logger
}

func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.svc.Signup(r.Context(), req)
	if err != nil {
		switch {
		case validation.IsRuleError(err), errors.Is(err, ErrUIDTaken):
			writeDetail(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("signup failed", "uid", req.UID, "error", err)
			writeDetail(w, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.UID == "" || req.Password == "" {
		writeDetail(w, http.StatusBadRequest, "uid and password are required")
		return
	}

	response, err := h.svc.Login(r.Context(), req.UID, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("login failed", "uid", req.UID, "error", err)
		writeDetail(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: response.AccessToken,
		TokenType:   "bearer",
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok || claims.UID == "" {
		writeDetail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.svc.Me(r.Context(), claims.UID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			writeDetail(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("failed to load user", "uid", claims.UID, "error", err)
		writeDetail(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
