package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shotaro12223/wisteria-ats-sub001/entities/deals"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

const DEFAULT_REQUEST_TIMEOUT = 15 * time.Second

// APIError carries the server's user-facing message along with the HTTP
// status. Every non-ok envelope turns into one of these.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError is returned before any request is sent, when the form-level
// required checks fail locally.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "、")
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DEFAULT_REQUEST_TIMEOUT},
	}
}

// do sends one request and decodes the response envelope. The body is read
// once and decoded twice: first to branch on ok, then into the caller's
// response type.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	envelope := struct {
		OK    bool              `json:"ok"`
		Error *schemas.ApiError `json:"error"`
	}{}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "サーバーからの応答を解釈できませんでした",
		}
	}

	if !envelope.OK {
		message := ""
		if envelope.Error != nil {
			message = envelope.Error.Message
		}
		if message == "" {
			message = fmt.Sprintf("リクエストに失敗しました (status: %d)", resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

type DealListParams struct {
	CompanyID int64
	Kind      string
	Stage     string
	Query     string
	Page      int
	Limit     int
}

func (c *Client) ListDeals(ctx context.Context, params DealListParams) (*schemas.DealListResponse, error) {
	query := url.Values{}
	if params.CompanyID != 0 {
		query.Set("companyId", strconv.FormatInt(params.CompanyID, 10))
	}
	if params.Kind != "" {
		query.Set("kind", params.Kind)
	}
	if params.Stage != "" {
		query.Set("stage", params.Stage)
	}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	response := &schemas.DealListResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/deals", query, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) GetDeal(ctx context.Context, dealID string) (*schemas.DealDetailResponse, error) {
	response := &schemas.DealDetailResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/deals/"+dealID, nil, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

// StartDealInput mirrors the start-deal form. Title and kind are required;
// everything else is optional.
type StartDealInput struct {
	CompanyID   int64   `json:"company_id"`
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Stage       string  `json:"stage"`
	StartDate   string  `json:"start_date"`
	DueDate     string  `json:"due_date"`
	Amount      float64 `json:"amount"`
	Probability int     `json:"probability"`
	Memo        string  `json:"memo"`
}

// StartDeal runs the same required checks the server does before sending, so
// the form can surface problems without a round trip.
func (c *Client) StartDeal(ctx context.Context, input StartDealInput) (*schemas.DealResponse, error) {
	if problems := deals.ValidateStartDeal(input.Title, input.Kind); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	response := &schemas.DealResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/deals", nil, input, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) UpdateDeal(ctx context.Context, dealID string, patch schemas.DealPatch) (*schemas.DealResponse, error) {
	response := &schemas.DealResponse{}
	if err := c.do(ctx, http.MethodPatch, "/api/deals/"+dealID, nil, patch, response); err != nil {
		return nil, err
	}
	return response, nil
}

type CompanyListParams struct {
	Query  string
	Tags   []string
	Status string
	Page   int
	Limit  int
}

func (c *Client) ListCompanies(ctx context.Context, params CompanyListParams) (*schemas.CompanyListResponse, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if len(params.Tags) > 0 {
		query.Set("tags", strings.Join(params.Tags, ","))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	response := &schemas.CompanyListResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/companies", query, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) GetRecord(ctx context.Context, companyID int64) (*schemas.RecordDetailResponse, error) {
	response := &schemas.RecordDetailResponse{}
	path := fmt.Sprintf("/api/companies/%d/record", companyID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) UpdateRecord(ctx context.Context, companyID int64, patch schemas.RecordPatch) (*schemas.RecordResponse, error) {
	response := &schemas.RecordResponse{}
	path := fmt.Sprintf("/api/companies/%d/record", companyID)
	if err := c.do(ctx, http.MethodPatch, path, nil, patch, response); err != nil {
		return nil, err
	}
	return response, nil
}

type ApplicantListParams struct {
	CompanyID int64
	JobID     int64
	Status    string
	SiteKey   string
	Query     string
	From      string
	To        string
	Sort      string
	Order     string
	Page      int
	Limit     int
}

func (c *Client) ListApplicants(ctx context.Context, params ApplicantListParams) (*schemas.ApplicantListResponse, error) {
	query := url.Values{}
	if params.CompanyID != 0 {
		query.Set("companyId", strconv.FormatInt(params.CompanyID, 10))
	}
	if params.JobID != 0 {
		query.Set("jobId", strconv.FormatInt(params.JobID, 10))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.SiteKey != "" {
		query.Set("siteKey", params.SiteKey)
	}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.From != "" {
		query.Set("from", params.From)
	}
	if params.To != "" {
		query.Set("to", params.To)
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}
	if params.Order != "" {
		query.Set("order", params.Order)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	response := &schemas.ApplicantListResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/applicants", query, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) GetApplicant(ctx context.Context, applicantID string) (*schemas.ApplicantResponse, error) {
	response := &schemas.ApplicantResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/applicants/"+applicantID, nil, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) UpdateApplicant(ctx context.Context, applicantID string, patch schemas.ApplicantPatch) (*schemas.ApplicantResponse, error) {
	response := &schemas.ApplicantResponse{}
	if err := c.do(ctx, http.MethodPatch, "/api/applicants/"+applicantID, nil, patch, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) ShareApplicant(ctx context.Context, applicantID string) (*schemas.ApplicantResponse, error) {
	response := &schemas.ApplicantResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/applicants/"+applicantID+"/share", nil, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}
