package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrijs2005/studentdir/internal/client/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

const (
	StudentsPath    = "/api/students"
	studentPath     = StudentsPath + "/{id}"
	RequestIDHeader = "X-Request-ID"
)

type RESTClient struct {
	http *resty.Client
}

// NewRESTClient returns a client for the API rooted at baseURL. A zero
// timeout leaves requests unbounded; cancellation then only comes from ctx.
func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, uuid.NewString())
		}
		return nil
	})

	return &RESTClient{http: c}
}

func (c *RESTClient) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

func (c *RESTClient) List(ctx context.Context) ([]models.Student, error) {
	resp, err := c.request(ctx).Get(StudentsPath)
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}

	var out []models.Student
	if err := decodeBody(resp, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Student{}
	}
	return out, nil
}

// Create posts a new record. A 2xx answer with an empty or unreadable body
// still counts as created; the sent record is returned in that case. Update
// does the same.
func (c *RESTClient) Create(ctx context.Context, s models.Student) (models.Student, error) {
	s.ID = ""

	resp, err := c.request(ctx).SetBody(s).Post(StudentsPath)
	if err := checkResponse(ctx, resp, err); err != nil {
		return models.Student{}, err
	}

	var out models.Student
	if err := decodeBody(resp, &out); err != nil || out.ID == "" {
		return s, nil
	}
	return out, nil
}

func (c *RESTClient) Update(ctx context.Context, id string, s models.Student, adminPassword string) (models.Student, error) {
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetBody(models.NewUpdateRequest(s, adminPassword)).
		Put(studentPath)
	if err := checkResponse(ctx, resp, err); err != nil {
		return models.Student{}, err
	}

	var out models.Student
	if err := decodeBody(resp, &out); err != nil || out.ID == "" {
		out = s
		out.ID = id
	}
	return out, nil
}

func (c *RESTClient) Delete(ctx context.Context, id string, adminPassword string) error {
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetBody(models.DeleteRequest{AdminPassword: adminPassword}).
		Delete(studentPath)
	return checkResponse(ctx, resp, err)
}

// checkResponse classifies the outcome of a round trip. Only a missing
// response counts as unavailable; any answer from the server is judged by its
// status code alone.
func checkResponse(ctx context.Context, resp *resty.Response, err error) error {
	if err != nil && (resp == nil || resp.RawResponse == nil) {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return pkgerrors.WithStack(ctxErr)
		}
		return pkgerrors.Wrapf(ErrUnavailable, "%v", err)
	}
	if !resp.IsError() {
		return nil
	}

	se := &StatusError{Code: resp.StatusCode()}
	var body apiError
	if decodeBody(resp, &body) == nil {
		se.Message = body.text()
	}
	return pkgerrors.WithStack(se)
}

// decodeBody unmarshals a JSON response body into v. An empty body leaves v
// untouched.
func decodeBody(resp *resty.Response, v any) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return pkgerrors.Wrapf(ErrMalformedResponse, "%v", err)
	}
	return nil
}
