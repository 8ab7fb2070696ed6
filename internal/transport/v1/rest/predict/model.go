package predictcntrl

import (
	"github.com/chup1x/carprice/internal/catalog"
	"github.com/chup1x/carprice/internal/presenter"
)

type predictResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
	FormattedPrice string  `json:"formatted_price"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status            string `json:"status"`
	PredictionService string `json:"prediction_service"`
}

type optionView struct {
	Value    string
	Selected bool
}

type fieldView struct {
	catalog.Field
	Max     string
	Value   string
	Options []optionView
}

type pageData struct {
	Fields      []fieldView
	View        presenter.View
	Notice      string
	SubmitLabel string
}
