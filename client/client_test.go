package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

func TestClientDecodesOKEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/deals/abc123" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer portal-token" {
			t.Errorf("Authorization = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schemas.DealDetailResponse{
			OK:   true,
			Deal: &schemas.Deal{Title: "新規求人掲載の提案", Stage: "提案", Kind: schemas.DEAL_KIND_NEW},
			Mode: schemas.DEAL_MODE_SALES,
		})
	}))
	defer server.Close()

	c := New(server.URL, "portal-token")

	response, err := c.GetDeal(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GetDeal() error = %v", err)
	}
	if response.Deal == nil || response.Deal.Title != "新規求人掲載の提案" {
		t.Errorf("deal = %+v", response.Deal)
	}
	if response.Mode != schemas.DEAL_MODE_SALES {
		t.Errorf("mode = %q", response.Mode)
	}
}

func TestClientSurfacesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(schemas.ErrorResponse{
			OK:    false,
			Error: schemas.ApiError{Message: "商談が見つかりません"},
		})
	}))
	defer server.Close()

	c := New(server.URL, "portal-token")

	_, err := c.GetDeal(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error")
	}

	apiErr := &APIError{}
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "商談が見つかりません" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestStartDealValidatesBeforeSending(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	c := New(server.URL, "portal-token")

	_, err := c.StartDeal(context.Background(), StartDealInput{Title: "", Kind: "invalid"})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	validationErr := &ValidationError{}
	if !errors.As(err, &validationErr) {
		t.Fatalf("error type = %T", err)
	}
	if len(validationErr.Problems) != 2 {
		t.Errorf("problems = %v", validationErr.Problems)
	}
	if got := atomic.LoadInt32(&requests); got != 0 {
		t.Errorf("server received %d requests, want 0", got)
	}
}

func TestListApplicantsBuildsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("companyId") != "42" || q.Get("status") != schemas.APPLICANT_STATUS_NEW || q.Get("page") != "2" {
			t.Errorf("query = %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schemas.ApplicantListResponse{
			OK:    true,
			Items: []schemas.ApplicantListItem{},
			Pagination: schemas.Pagination{
				Page: 2, Limit: 20, TotalCount: 0, TotalPages: 0,
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "portal-token")

	response, err := c.ListApplicants(context.Background(), ApplicantListParams{
		CompanyID: 42,
		Status:    schemas.APPLICANT_STATUS_NEW,
		Page:      2,
	})
	if err != nil {
		t.Fatalf("ListApplicants() error = %v", err)
	}
	if response.Pagination.Page != 2 {
		t.Errorf("pagination = %+v", response.Pagination)
	}
}

func TestClientHandlesGarbageResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	}))
	defer server.Close()

	c := New(server.URL, "portal-token")

	_, err := c.GetDeal(context.Background(), "abc")
	apiErr := &APIError{}
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v (%T)", err, err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
}
