package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/chup1x/carprice/internal/domain"
	"github.com/go-resty/resty/v2"
)

// Failure is any unsuccessful prediction call. Detail is set only when the
// service answered with a JSON body carrying a "detail" string.
type Failure struct {
	Status int
	Detail string
	Err    error
}

func (f *Failure) Error() string {
	switch {
	case f.Detail != "":
		return fmt.Sprintf("prediction service: status %d: %s", f.Status, f.Detail)
	case f.Err != nil:
		return fmt.Sprintf("prediction service: %s", f.Err.Error())
	default:
		return fmt.Sprintf("prediction service: status %d", f.Status)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

var ErrMalformedResponse = errors.New("malformed response body")

type predictResponse struct {
	PredictedPrice *float64 `json:"predicted_price"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(strings.TrimRight(baseURL, "/"))
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger.With("component", "prediction_client"),
	}
}

// Predict posts the record to /predict and returns the predicted price.
// Every error it returns is a *Failure.
func (c *Client) Predict(ctx context.Context, record domain.CarAttributes) (float64, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/predict")
	if err != nil {
		c.logger.Warn("prediction request failed", "err", err)
		return 0, &Failure{Err: fmt.Errorf("to get a response from prediction service: %w", err)}
	}

	if res.IsError() || res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		failure := &Failure{Status: res.StatusCode(), Detail: detailOf(res.Body())}
		c.logger.Warn("prediction service rejected request", "status", failure.Status, "detail", failure.Detail)
		return 0, failure
	}

	var body predictResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return 0, &Failure{Status: res.StatusCode(), Err: fmt.Errorf("to decode a json body: %w", err)}
	}
	if body.PredictedPrice == nil {
		return 0, &Failure{Status: res.StatusCode(), Err: ErrMalformedResponse}
	}

	c.logger.Debug("prediction received", "price", *body.PredictedPrice)
	return *body.PredictedPrice, nil
}

// Health reports whether the service root answers with a success status.
func (c *Client) Health(ctx context.Context) error {
	res, err := c.http.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("reach prediction service: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("prediction service health: status %d", res.StatusCode())
	}
	return nil
}

func detailOf(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil || len(e.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(e.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

// Message is the text shown to the user for a failed call.
func Message(err error, fallback string) string {
	var failure *Failure
	if errors.As(err, &failure) && failure.Detail != "" {
		return failure.Detail
	}
	return fallback
}
