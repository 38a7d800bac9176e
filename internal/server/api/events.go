package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/internal/server/triggers"
	"github.com/kamikazebr/engage-server/pkg/models"
	"github.com/kamikazebr/engage-server/pkg/utils"
)

type EventDispatcher interface {
	Handles(collection string) bool
	Dispatch(ctx context.Context, collection, docID string, decode triggers.Decoder)
}

// DocumentSource loads a created document; a nil decoder means it does not exist.
type DocumentSource interface {
	Load(ctx context.Context, collection, id string) (func(v interface{}) error, error)
}

// EventHandler accepts document-creation events pushed by the store. The pushed
// body only names the document; the stored copy is re-read and dispatched, so a
// push for a document that was never written has no effect. Once the document is
// found the response is 204: reaction failures are logged by the reactor and
// never reported back.
type EventHandler struct {
	dispatcher EventDispatcher
	documents  DocumentSource
}

func NewEventHandler(dispatcher EventDispatcher, documents DocumentSource) *EventHandler {
	return &EventHandler{dispatcher: dispatcher, documents: documents}
}

func (h *EventHandler) DocumentCreated(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if !h.dispatcher.Handles(collection) {
		respondErrorJSON(w, http.StatusNotFound, "no trigger for collection "+collection)
		return
	}

	var event models.StoreEvent
	if err := decodeJSON(r, &event); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, "invalid event envelope")
		return
	}
	event.DocumentID = strings.TrimSpace(event.DocumentID)
	if err := utils.ValidateStruct(event); err != nil {
		respondErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.Contains(event.DocumentID, "/") {
		respondErrorJSON(w, http.StatusBadRequest, "document id must not contain '/'")
		return
	}

	decode, err := h.documents.Load(r.Context(), collection, event.DocumentID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("collection", collection).
			Str("doc_id", event.DocumentID).
			Msg("failed to load event document")
		respondErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if decode == nil {
		respondErrorJSON(w, http.StatusNotFound, "document not found")
		return
	}

	h.dispatcher.Dispatch(r.Context(), collection, event.DocumentID, decode)

	w.WriteHeader(http.StatusNoContent)
}
