package api

import (
	"context"
	"net/http"

	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/pkg/models"
	"github.com/kamikazebr/engage-server/pkg/utils"
)

type DirectNotifier interface {
	Notify(ctx context.Context, userID, title, body string) error
}

type NotificationHandler struct {
	notifier DirectNotifier
}

func NewNotificationHandler(notifier DirectNotifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req models.SendNotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.notifier.Notify(r.Context(), req.UserID, req.Title, req.Body); err != nil {
		logServiceError(r, err, "direct notification failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Notification sent",
	})
}

func logServiceError(r *http.Request, err error, msg string) {
	logging.Ctx(r.Context()).Warn().Err(err).Int("status", statusForError(err)).Msg(msg)
}
