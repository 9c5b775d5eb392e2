package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	apperrors "github.com/agorahq/agora/internal/platform/errors"
	"github.com/agorahq/agora/internal/services/file/event"
	"github.com/agorahq/agora/internal/services/project/application"
	"github.com/agorahq/agora/internal/services/project/storage"
)

type fakeCreator struct {
	inputs []application.CreateInput
	err    error
}

func (c *fakeCreator) Create(_ context.Context, input application.CreateInput) (storage.Project, error) {
	if c.err != nil {
		return storage.Project{}, c.err
	}
	c.inputs = append(c.inputs, input)
	return storage.Project{ID: "p1", Name: input.Name}, nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func encodePayload(t *testing.T, payload event.Payload) []byte {
	t.Helper()
	body, err := event.Encode(payload)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	return body
}

func filePayload() event.Payload {
	return event.Payload{
		UserID:      "u1",
		AppID:       "files",
		FileName:    "report.pdf",
		FileID:      "f1",
		EventIssuer: "file-service",
		EventKind:   event.KindCreated,
	}
}

func TestOnEventCreatesProject(t *testing.T) {
	creator := &fakeCreator{}
	h := New(creator, []string{"file-service"}, testLogger())

	err := h.OnEvent(context.Background(), encodePayload(t, filePayload()))
	if err != nil {
		t.Fatalf("on event: %v", err)
	}
	if len(creator.inputs) != 1 {
		t.Fatalf("expected 1 create, got %d", len(creator.inputs))
	}
	input := creator.inputs[0]
	if input.Name != "report.pdf" || input.Reference != "f1" || input.CreatedBy != "u1" {
		t.Fatalf("unexpected create input %+v", input)
	}
}

func TestOnEventRejectsGarbage(t *testing.T) {
	creator := &fakeCreator{}
	h := New(creator, []string{"file-service"}, testLogger())

	err := h.OnEvent(context.Background(), []byte("not a payload"))
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeInvalidFormat {
		t.Fatalf("expected invalid format error, got %v", err)
	}
	if len(creator.inputs) != 0 {
		t.Fatal("expected no create for undecodable body")
	}
}

func TestOnEventRejectsIncompletePayload(t *testing.T) {
	creator := &fakeCreator{}
	h := New(creator, []string{"file-service"}, testLogger())

	payload := filePayload()
	payload.UserID = ""
	err := h.OnEvent(context.Background(), encodePayload(t, payload))
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeMissingFields {
		t.Fatalf("expected missing fields error, got %v", err)
	}
}

func TestOnEventFiltersUntrustedIssuer(t *testing.T) {
	creator := &fakeCreator{}
	h := New(creator, []string{"file-service"}, testLogger())

	payload := filePayload()
	payload.EventIssuer = "stranger"
	if err := h.OnEvent(context.Background(), encodePayload(t, payload)); err != nil {
		t.Fatalf("untrusted issuer must be dropped without error, got %v", err)
	}
	if len(creator.inputs) != 0 {
		t.Fatal("expected no create for untrusted issuer")
	}
}

func TestOnEventIgnoresOtherKinds(t *testing.T) {
	creator := &fakeCreator{}
	h := New(creator, []string{"file-service"}, testLogger())

	payload := filePayload()
	payload.EventKind = event.KindDeleted
	if err := h.OnEvent(context.Background(), encodePayload(t, payload)); err != nil {
		t.Fatalf("unhandled kind must be acknowledged, got %v", err)
	}
	if len(creator.inputs) != 0 {
		t.Fatal("expected no create for deleted kind")
	}
}

func TestOnEventAcknowledgesReplay(t *testing.T) {
	creator := &fakeCreator{err: apperrors.New(apperrors.CodeAlreadyExists, "project already exists")}
	h := New(creator, []string{"file-service"}, testLogger())

	if err := h.OnEvent(context.Background(), encodePayload(t, filePayload())); err != nil {
		t.Fatalf("replayed delivery must be acknowledged, got %v", err)
	}
}

func TestOnEventPropagatesFailures(t *testing.T) {
	creator := &fakeCreator{err: apperrors.New(apperrors.CodeUnknown, "storage down")}
	h := New(creator, []string{"file-service"}, testLogger())

	if err := h.OnEvent(context.Background(), encodePayload(t, filePayload())); err == nil {
		t.Fatal("expected error for storage failure")
	}
}
