package predictcntrl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chup1x/carprice/internal/catalog"
	"github.com/chup1x/carprice/internal/domain"
	"github.com/chup1x/carprice/internal/presenter"
	"github.com/chup1x/carprice/internal/services/prediction"
	"github.com/chup1x/carprice/internal/services/submission"
	"github.com/chup1x/carprice/internal/session"
	"github.com/chup1x/carprice/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type predictionClient interface {
	submission.Predictor
	Health(ctx context.Context) error
}

type predictController struct {
	client    predictionClient
	sessions  *session.Store
	catalog   *catalog.Catalog
	validator *validator.Validate
	cookie    string
	cookieTTL time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func NewPredictController(
	client predictionClient,
	sessions *session.Store,
	cat *catalog.Catalog,
	validate *validator.Validate,
	cookie string,
	cookieTTL time.Duration,
	logger *slog.Logger,
) *predictController {
	return &predictController{
		client:    client,
		sessions:  sessions,
		catalog:   cat,
		validator: validate,
		cookie:    cookie,
		cookieTTL: cookieTTL,
		now:       time.Now,
		logger:    logger,
	}
}

func (p *predictController) session(c *fiber.Ctx) *session.Session {
	sess := p.sessions.Get(c.Cookies(p.cookie))
	if sess.ID != c.Cookies(p.cookie) {
		c.Cookie(&fiber.Cookie{
			Name:     p.cookie,
			Value:    sess.ID,
			Path:     "/",
			MaxAge:   int(p.cookieTTL.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sess
}

func (p *predictController) pageHandler(c *fiber.Ctx) error {
	return p.render(c, p.session(c), fiber.StatusOK, "")
}

func (p *predictController) submitHandler(c *fiber.Ctx) error {
	sess := p.session(c)

	if sess.Controller.State().Phase == submission.Loading {
		return p.render(c, sess, fiber.StatusConflict, submission.ErrBusy.Error())
	}

	values := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values[string(key)] = string(value)
	})
	sess.Form.UpdateFields(values)

	if err := p.validator.Struct(sess.Form.Record()); err != nil {
		return p.render(c, sess, fiber.StatusUnprocessableEntity, validation.Describe(err))
	}

	if err := sess.Form.Submit(c.UserContext(), sess.Controller); err != nil {
		if errors.Is(err, submission.ErrBusy) {
			return p.render(c, sess, fiber.StatusConflict, err.Error())
		}
		return fmt.Errorf("submit form: %w", err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (p *predictController) resetHandler(c *fiber.Ctx) error {
	sess := p.session(c)
	sess.Form.ResetFields(sess.Controller)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (p *predictController) resultResetHandler(c *fiber.Ctx) error {
	p.session(c).Controller.Reset()
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (p *predictController) apiPredictHandler(c *fiber.Ctx) error {
	var req domain.CarAttributes
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Detail: "request body must be a JSON car record"})
	}
	if err := p.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Detail: validation.Describe(err)})
	}

	price, err := p.client.Predict(c.UserContext(), req)
	if err != nil {
		status := fiber.StatusBadGateway
		var failure *prediction.Failure
		if errors.As(err, &failure) && failure.Status >= http.StatusBadRequest {
			status = failure.Status
		}
		return c.Status(status).JSON(errorResponse{Detail: prediction.Message(err, submission.FallbackMessage)})
	}

	return c.JSON(predictResponse{
		PredictedPrice: price,
		FormattedPrice: presenter.FormatPrice(price),
	})
}

func (p *predictController) healthHandler(c *fiber.Ctx) error {
	res := healthResponse{Status: "ok", PredictionService: "up"}
	if err := p.client.Health(c.UserContext()); err != nil {
		p.logger.Warn("prediction service unhealthy", "err", err)
		res.PredictionService = "down"
	}
	return c.JSON(res)
}

func (p *predictController) render(c *fiber.Ctx, sess *session.Session, status int, notice string) error {
	view := presenter.ViewOf(sess.Controller.State())

	label := "Predict Price"
	if view.Loading {
		label = "Predicting..."
	}

	return c.Status(status).Render("index", pageData{
		Fields:      p.fieldViews(sess.Form.Record()),
		View:        view,
		Notice:      notice,
		SubmitLabel: label,
	})
}

func (p *predictController) fieldViews(record domain.CarAttributes) []fieldView {
	now := p.now()
	fields := p.catalog.Fields()
	out := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		value := formatValue(record.Value(f.Name))
		fv := fieldView{Field: f, Max: f.MaxAt(now), Value: value}
		for _, choice := range f.Choices {
			fv.Options = append(fv.Options, optionView{Value: choice, Selected: choice == value})
		}
		out = append(out, fv)
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
