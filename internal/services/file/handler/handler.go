// Package handler consumes file lifecycle events and mirrors them into
// projects.
package handler

import (
	"context"
	stderrors "errors"
	"log"

	"github.com/agorahq/agora/internal/platform/errors"
	"github.com/agorahq/agora/internal/services/file/event"
	"github.com/agorahq/agora/internal/services/project/application"
	"github.com/agorahq/agora/internal/services/project/storage"
)

// ProjectCreator is the slice of the application the handler needs.
type ProjectCreator interface {
	Create(ctx context.Context, input application.CreateInput) (storage.Project, error)
}

// Handler reacts to file events from trusted issuers. Events from issuers
// outside the allow-list are acknowledged and dropped.
type Handler struct {
	app     ProjectCreator
	issuers map[string]struct{}
	logger  *log.Logger
}

// New builds a Handler trusting only the given issuers.
func New(app ProjectCreator, issuers []string, logger *log.Logger) *Handler {
	trusted := make(map[string]struct{}, len(issuers))
	for _, issuer := range issuers {
		trusted[issuer] = struct{}{}
	}
	return &Handler{app: app, issuers: trusted, logger: logger}
}

// OnEvent decodes one delivery and applies it. A nil return acknowledges the
// delivery; an error rejects it without requeue.
func (h *Handler) OnEvent(ctx context.Context, body []byte) error {
	payload, err := event.Decode(body)
	if err != nil {
		return errors.Wrap(errors.CodeInvalidFormat, "undecodable event body", err)
	}
	if err := payload.Validate(); err != nil {
		return errors.Wrap(errors.CodeMissingFields, "incomplete event payload", err)
	}

	if _, ok := h.issuers[payload.EventIssuer]; !ok {
		h.logger.Printf("discarding event from untrusted issuer %q", payload.EventIssuer)
		return nil
	}

	switch payload.EventKind {
	case event.KindCreated:
		return h.onCreated(ctx, payload)
	default:
		h.logger.Printf("ignoring event kind %q from issuer %q", payload.EventKind, payload.EventIssuer)
		return nil
	}
}

func (h *Handler) onCreated(ctx context.Context, payload event.Payload) error {
	_, err := h.app.Create(ctx, application.CreateInput{
		Name:      payload.FileName,
		Reference: payload.FileID,
		CreatedBy: payload.UserID,
	})
	if err != nil {
		// A replayed delivery finds the project it already created.
		var appErr *errors.Error
		if stderrors.As(err, &appErr) && appErr.Code == errors.CodeAlreadyExists {
			h.logger.Printf("project for file %q already exists, acknowledging replay", payload.FileID)
			return nil
		}
		return err
	}
	h.logger.Printf("created project for file %q owned by %q", payload.FileID, payload.UserID)
	return nil
}
