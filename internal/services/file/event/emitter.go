package event

import (
	"context"
	"strings"

	"github.com/agorahq/agora/internal/platform/errors"
	"github.com/agorahq/agora/internal/platform/eventbus"
	"github.com/agorahq/agora/internal/services/project/storage"
)

// Bus emits project lifecycle announcements onto the file exchange. The
// publisher must confirm broker receipt before Emit methods return nil.
type Bus struct {
	pub      eventbus.Publisher
	exchange string
	appID    string
	issuer   string
}

// NewBus builds an emitter bound to one exchange and issuer identity.
func NewBus(pub eventbus.Publisher, exchange, appID, issuer string) *Bus {
	return &Bus{
		pub:      pub,
		exchange: exchange,
		appID:    appID,
		issuer:   issuer,
	}
}

// EmitCreated announces a newly created project. Consumers decide relevance
// by the issuer stamped on the payload.
func (b *Bus) EmitCreated(ctx context.Context, project storage.Project) error {
	return b.emit(ctx, KindCreated, project)
}

func (b *Bus) emit(ctx context.Context, kind Kind, project storage.Project) error {
	if strings.TrimSpace(project.Meta.CreatedBy) == "" {
		return errors.New(errors.CodeMissingFields, "project creator is required to emit an event")
	}

	payload := Payload{
		UserID:        project.Meta.CreatedBy,
		AppID:         b.appID,
		FileName:      project.Name,
		FileID:        project.ID,
		FileReference: project.Reference,
		EventIssuer:   b.issuer,
		EventKind:     kind,
	}

	body, err := Encode(payload)
	if err != nil {
		return errors.Wrap(errors.CodeUnknown, "encode project event", err)
	}
	if err := b.pub.Publish(ctx, b.exchange, body); err != nil {
		return errors.Wrap(errors.CodeUnknown, "publish project event", err)
	}
	return nil
}
