package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

func TestSendErrorWithInternalCode(t *testing.T) {
	rec := httptest.NewRecorder()

	SendError(rec, http.StatusBadGateway, "", CANNOT_CONNECT_TO_MONGODB)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}

	response := schemas.ErrorResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("body did not decode: %v", err)
	}

	if response.OK {
		t.Error("ok = true, want false")
	}
	if response.Error.Message == "" {
		t.Error("internal error code must produce a non-empty generic message")
	}
	if response.Error.Message != SendInternalError(CANNOT_CONNECT_TO_MONGODB) {
		t.Errorf("message = %q, want the generic internal message", response.Error.Message)
	}
}

func TestSendErrorWithExplicitMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	SendError(rec, http.StatusNotFound, "商談が見つかりません", 0)

	response := schemas.ErrorResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("body did not decode: %v", err)
	}
	if response.Error.Message != "商談が見つかりません" {
		t.Errorf("message = %q", response.Error.Message)
	}
}

// 0 means "no internal error" in SendError and in handlers that branch on a
// returned code, so the first real code must not collide with it.
func TestInternalErrorCodesStartAboveZero(t *testing.T) {
	if CANNOT_CONNECT_TO_MONGODB == 0 {
		t.Fatal("CANNOT_CONNECT_TO_MONGODB = 0, collides with the no-error sentinel")
	}
}
