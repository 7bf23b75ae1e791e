package legalapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/labstack/gommon/log"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeServerError   = "SERVER_ERROR"
	CodeRequestFailed = "REQUEST_FAILED"
)

var (
	ErrNotFound     = &APIError{Code: CodeNotFound, Status: http.StatusNotFound}
	ErrUnauthorized = &APIError{Code: CodeUnauthorized, Status: http.StatusUnauthorized}
)

// APIError is a failed business lookup. Errors with the same code match
// under errors.Is.
type APIError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Code
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

type Options struct {
	BaseURL   string
	APIKey    string
	AccountID string
	Timeout   time.Duration
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(opts Options) *Client {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	if opts.APIKey != "" {
		client.SetHeader("x-apikey", opts.APIKey)
	}
	if opts.AccountID != "" {
		client.SetHeader("Account-Id", opts.AccountID)
	}

	return &Client{httpClient: client}
}

// GetEntity fetches a business by its registry identifier. A body that
// carries an error, or no business, is a failed lookup whatever the status.
func (c *Client) GetEntity(ctx context.Context, identifier string) (*BusinessResponse, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("identifier", identifier).
		Get("/businesses/{identifier}")

	if err != nil {
		log.Errorf("legal api request for %s failed: %v", identifier, err)
		return nil, &APIError{Code: CodeRequestFailed, Err: err}
	}

	var body businessEnvelope
	decodeErr := json.Unmarshal(resp.Body(), &body)

	switch status := resp.StatusCode(); {
	case status == http.StatusNotFound:
		return nil, ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, &APIError{Code: CodeUnauthorized, Status: status, Message: body.message()}
	case status != http.StatusOK:
		return nil, &APIError{
			Code:    CodeServerError,
			Status:  status,
			Message: body.message(),
			Err:     fmt.Errorf("legal api failed with status code: %d", status),
		}
	}

	if decodeErr != nil {
		log.Errorf("legal api sent an unreadable body for %s: %v", identifier, decodeErr)
		return nil, &APIError{Code: CodeServerError, Status: http.StatusOK, Err: decodeErr}
	}
	if body.Error != "" {
		return nil, &APIError{Code: body.Error, Status: http.StatusOK, Message: body.Message}
	}
	if body.Business == nil || body.Business.Identifier == "" {
		return nil, &APIError{
			Code:   CodeServerError,
			Status: http.StatusOK,
			Err:    fmt.Errorf("legal api returned no business for %s", identifier),
		}
	}
	return &BusinessResponse{Business: *body.Business}, nil
}
