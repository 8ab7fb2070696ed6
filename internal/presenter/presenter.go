package presenter

import (
	"math"

	"github.com/chup1x/carprice/internal/services/submission"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders price as US dollars with grouped thousands and
// exactly two decimals.
func FormatPrice(price float64) string {
	if price < 0 {
		return "-$" + printer.Sprintf("%.2f", math.Abs(price))
	}
	return "$" + printer.Sprintf("%.2f", price)
}

type PriceCard struct {
	Formatted   string
	Subtitle    string
	ResetLabel  string
	ResetAction string
}

func Render(price float64) PriceCard {
	return PriceCard{
		Formatted:   FormatPrice(price),
		Subtitle:    "Estimated market value based on your car's features",
		ResetLabel:  "Make Another Prediction",
		ResetAction: "/result/reset",
	}
}

type Panel int

const (
	PanelNone Panel = iota
	PanelSpinner
	PanelError
	PanelPrice
)

// View is what the page shows below the form. At most one panel is set.
type View struct {
	Panel   Panel
	Loading bool
	Error   string
	Card    *PriceCard
}

func ViewOf(state submission.State) View {
	switch state.Phase {
	case submission.Loading:
		return View{Panel: PanelSpinner, Loading: true}
	case submission.Failure:
		return View{Panel: PanelError, Error: state.Message}
	case submission.Success:
		card := Render(state.Price)
		return View{Panel: PanelPrice, Card: &card}
	default:
		return View{Panel: PanelNone}
	}
}
