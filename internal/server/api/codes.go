package api

import (
	"context"
	"net/http"
	"time"

	"github.com/kamikazebr/engage-server/pkg/models"
	"github.com/kamikazebr/engage-server/pkg/utils"
)

type CodeIssuer interface {
	RequestCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) (string, time.Time, error)
}

type CodeHandler struct {
	codes CodeIssuer
}

func NewCodeHandler(codes CodeIssuer) *CodeHandler {
	return &CodeHandler{codes: codes}
}

func (h *CodeHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req models.RequestCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		respondErrorJSON(w, http.StatusBadRequest, "email is required")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.codes.RequestCode(r.Context(), req.Email); err != nil {
		logServiceError(r, err, "code issuance failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

func (h *CodeHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req models.VerifyCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Code == "" {
		respondErrorJSON(w, http.StatusBadRequest, "email and code are required")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	token, expiresAt, err := h.codes.VerifyCode(r.Context(), req.Email, req.Code)
	if err != nil {
		logServiceError(r, err, "code verification failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.VerifyCodeResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}
