package submission

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/chup1x/carprice/internal/domain"
	"github.com/chup1x/carprice/internal/services/prediction"
	"github.com/stretchr/testify/require"
)

type predictorFunc func(ctx context.Context, record domain.CarAttributes) (float64, error)

func (f predictorFunc) Predict(ctx context.Context, record domain.CarAttributes) (float64, error) {
	return f(ctx, record)
}

func newController(p Predictor) *Controller {
	return NewController(p, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPredictSuccess(t *testing.T) {
	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		return 24321.5, nil
	}))

	require.NoError(t, c.Predict(context.Background(), domain.CarAttributes{}))
	require.Equal(t, State{Phase: Success, Price: 24321.5}, c.State())
}

func TestPredictFailureUsesDetail(t *testing.T) {
	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		return 0, &prediction.Failure{Status: http.StatusBadRequest, Detail: "Invalid Levy"}
	}))

	require.NoError(t, c.Predict(context.Background(), domain.CarAttributes{}))
	require.Equal(t, State{Phase: Failure, Message: "Invalid Levy"}, c.State())
}

func TestPredictNetworkFailureUsesFallback(t *testing.T) {
	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		return 0, &prediction.Failure{Err: errors.New("connection refused")}
	}))

	require.NoError(t, c.Predict(context.Background(), domain.CarAttributes{}))
	require.Equal(t, State{Phase: Failure, Message: FallbackMessage}, c.State())
}

func TestPredictPanicLeavesLoading(t *testing.T) {
	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		panic("boom")
	}))

	require.NoError(t, c.Predict(context.Background(), domain.CarAttributes{}))
	require.Equal(t, State{Phase: Failure, Message: FallbackMessage}, c.State())
}

func TestResetAfterSuccess(t *testing.T) {
	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		return 24321.5, nil
	}))
	require.NoError(t, c.Predict(context.Background(), domain.CarAttributes{}))

	c.Reset()
	require.Equal(t, State{Phase: Idle}, c.State())
}

func TestResetWhenIdleIsNoop(t *testing.T) {
	c := newController(nil)

	c.Reset()
	require.Equal(t, State{Phase: Idle}, c.State())
	c.Reset()
	require.Equal(t, State{Phase: Idle}, c.State())
}

func TestNewSubmissionClearsPreviousResult(t *testing.T) {
	calls := 0
	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		calls++
		if calls == 1 {
			return 0, &prediction.Failure{Detail: "Invalid Levy"}
		}
		return 100, nil
	}))

	require.NoError(t, c.Predict(context.Background(), domain.CarAttributes{}))
	require.Equal(t, Failure, c.State().Phase)

	require.NoError(t, c.Predict(context.Background(), domain.CarAttributes{}))
	require.Equal(t, State{Phase: Success, Price: 100}, c.State())
}

func TestSecondSubmissionWhileLoadingIsRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		calls.Add(1)
		close(started)
		<-release
		return 1, nil
	}))

	done := make(chan error, 1)
	go func() {
		done <- c.Predict(context.Background(), domain.CarAttributes{})
	}()
	<-started

	require.Equal(t, Loading, c.State().Phase)
	require.ErrorIs(t, c.Predict(context.Background(), domain.CarAttributes{}), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, State{Phase: Success, Price: 1}, c.State())
}

func TestStaleResponseAfterResetIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	c := newController(predictorFunc(func(context.Context, domain.CarAttributes) (float64, error) {
		close(started)
		<-release
		return 999, nil
	}))

	done := make(chan error, 1)
	go func() {
		done <- c.Predict(context.Background(), domain.CarAttributes{})
	}()
	<-started

	c.Reset()
	close(release)
	require.NoError(t, <-done)

	require.Equal(t, State{Phase: Idle}, c.State())
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "loading", Loading.String())
	require.Equal(t, "phase(9)", Phase(9).String())
}
