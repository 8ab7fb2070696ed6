// Package submission owns the prediction lifecycle of one form: it issues
// the remote call and tracks whether the page shows nothing, a spinner,
// an error or a price.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chup1x/carprice/internal/domain"
	"github.com/chup1x/carprice/internal/services/prediction"
)

// FallbackMessage is shown when the service gave no usable detail.
const FallbackMessage = "Failed to get prediction. Please check your input and try again."

var ErrBusy = errors.New("a prediction is already in progress")

type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is a snapshot. Price is meaningful only in Success, Message only
// in Failure.
type State struct {
	Phase   Phase
	Price   float64
	Message string
}

type Predictor interface {
	Predict(ctx context.Context, record domain.CarAttributes) (float64, error)
}

type Controller struct {
	predictor Predictor
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	// generation identifies the current submission; responses carrying an
	// older value arrived after a reset or resubmission and are dropped.
	generation uint64
}

func NewController(predictor Predictor, logger *slog.Logger) *Controller {
	return &Controller{
		predictor: predictor,
		logger:    logger,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Predict runs one prediction for record. It returns ErrBusy without
// calling the service while another prediction is loading; any other
// outcome is recorded in the state, not returned.
func (c *Controller) Predict(ctx context.Context, record domain.CarAttributes) error {
	token, err := c.begin()
	if err != nil {
		return err
	}

	var (
		price   float64
		callErr error
	)
	defer func() {
		if r := recover(); r != nil {
			callErr = fmt.Errorf("predictor panic: %v", r)
		}
		c.finish(token, price, callErr)
	}()

	price, callErr = c.predictor.Predict(ctx, record)
	return nil
}

func (c *Controller) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase == Loading {
		return 0, ErrBusy
	}
	c.generation++
	c.state = State{Phase: Loading}
	return c.generation, nil
}

// finish always leaves Loading for the current generation.
func (c *Controller) finish(token uint64, price float64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.generation {
		c.logger.Debug("discarding stale prediction response", "token", token, "current", c.generation)
		return
	}

	if err != nil {
		c.logger.Warn("prediction failed", "err", err)
		c.state = State{Phase: Failure, Message: prediction.Message(err, FallbackMessage)}
		return
	}
	c.state = State{Phase: Success, Price: price}
}

// Reset returns to Idle. An in-flight call keeps running but its result
// is discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase != Idle {
		c.generation++
	}
	c.state = State{Phase: Idle}
}
