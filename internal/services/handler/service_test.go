package handler_test

import (
	"errors"
	"testing"

	"sampledata/internal/domain"
	"sampledata/internal/services/handler"
)

func TestHandleRequest_FixedSuccess(t *testing.T) {
	svc := handler.New(nil)

	resp := svc.HandleRequest(domain.Request{ID: "req-1", Payload: "ignored"})
	if resp.Status != domain.StatusOK {
		t.Fatalf("status = %q, want %q", resp.Status, domain.StatusOK)
	}
	if resp.Data != nil {
		t.Fatalf("data = %v, want nil", resp.Data)
	}
	if resp.Message != "" {
		t.Fatalf("message = %q, want empty", resp.Message)
	}
}

func TestHandleError_WrapsMessage(t *testing.T) {
	svc := handler.New(nil)

	resp := svc.HandleError(errors.New("boom"))
	if resp.Status != domain.StatusError {
		t.Fatalf("status = %q, want %q", resp.Status, domain.StatusError)
	}
	if resp.Message != "boom" {
		t.Fatalf("message = %q, want %q", resp.Message, "boom")
	}
}
