package agent

import (
	"context"
	"fmt"

	"github.com/etnz/dispersion"
	"github.com/etnz/dispersion/docs"
	"github.com/etnz/dispersion/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a long/short options book with a hedge leg. He is here primarily to understand
			how the book performed, what changed day over day, and how hedged it currently is.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStrategist returns an expert grounding market questions in search.
func NewStrategist() *Expert {
	return &Expert{
		Name: "Strategist",
		Description: `This is an expert derivatives strategist,
		very well aware of options markets, volatility regimes and the
		latest news about underlyings and indices.
		Ask the Strategist whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in options and volatility trading. You can search and find about
			anything related to markets, underlyings, indices and volatility. You leverage Google
			Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's position log. Its
// tools compute the book's reports on demand; load is called on every
// tool call so the analyst always sees the current log.
func NewAnalyst(load func() (*dispersion.Book, error), cfg dispersion.HedgeConfig) *Expert {

	lib := []Function{
		performanceFunc(load),
		changesFunc(load),
		positionsFunc(load),
		exposureFunc(load, cfg),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's daily position log.
		He can compute performance, day-over-day changes, raw positions and net greek exposure of the book.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's long/short options book.
				You know how to use the Tools to extract relevant figures from the daily position log.
				You are part of a team of experts, yours is everything about the user's book. They might ask
				you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the book
				  - performance over a window (equity, Sharpe, drawdown, PnL by leg)
				  - day-over-day changes per ticker
				  - raw positions on a date
				  - net delta/vega exposure and hedge activity
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// errResponse packs an error into a function response for the model.
func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var dateSchema = &genai.Schema{
	Type: genai.TypeString,
	Description: `A date in YYYY-MM-DD format. The latest date of the log is the default.

	` + must(docs.GetTopic("position-log")),
}

// parseDate reads an optional date argument, defaulting to the latest
// date of the book.
func parseDate(args map[string]any, key string, b *dispersion.Book) (dispersion.Date, error) {
	idate, hasDate := args[key]
	if !hasDate {
		last, ok := b.Last()
		if !ok {
			return dispersion.Date{}, dispersion.ErrEmptyHistory
		}
		return last, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return dispersion.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", key, idate)
	}
	return dispersion.ParseDate(sdate)
}

func performanceFunc(load func() (*dispersion.Book, error)) *Func {
	const name = "Performance"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Performance computes the book's performance over a date window:
			equity curve endpoints, total return, annualized Sharpe ratio, max drawdown
			and cumulative PnL split by long and short leg.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": dateSchema,
					"to":   dateSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted performance summary of the window.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return errResponse(id, name, err)
			}
			s, err := dispersion.NewPnLSeries(b)
			if err != nil {
				return errResponse(id, name, err)
			}
			from, err := parseDate(args, "from", b)
			if err != nil {
				return errResponse(id, name, err)
			}
			if _, hasFrom := args["from"]; !hasFrom {
				from, _ = b.First()
			}
			to, err := parseDate(args, "to", b)
			if err != nil {
				return errResponse(id, name, err)
			}
			w, err := dispersion.NewWindowReport(s, dispersion.NewRange(from, to))
			if err != nil {
				return errResponse(id, name, err)
			}
			return okResponse(id, name, renderer.SummaryMarkdown(w))
		},
	}
}

func changesFunc(load func() (*dispersion.Book, error)) *Func {
	const name = "Changes"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Changes computes the day-over-day per-ticker changes of the book on a date:
			quantity, price, greek and value changes versus the previous recorded date.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": dateSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of per-ticker changes.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return errResponse(id, name, err)
			}
			on, err := parseDate(args, "date", b)
			if err != nil {
				return errResponse(id, name, err)
			}
			r, err := dispersion.NewChangeReport(b, on)
			if err != nil {
				return errResponse(id, name, err)
			}
			return okResponse(id, name, renderer.ChangesMarkdown(r))
		},
	}
}

func positionsFunc(load func() (*dispersion.Book, error)) *Func {
	const name = "Positions"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Positions lists the raw positions of the book on a date, with side,
			quantity, price, market value and signed greeks.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": dateSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of positions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return errResponse(id, name, err)
			}
			on, err := parseDate(args, "date", b)
			if err != nil {
				return errResponse(id, name, err)
			}
			return okResponse(id, name, renderer.PositionsMarkdown(dispersion.NewSnapshot(b, on)))
		},
	}
}

func exposureFunc(load func() (*dispersion.Book, error), cfg dispersion.HedgeConfig) *Func {
	const name = "Exposure"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Exposure computes the daily net delta and net vega of the book,
			and flags the days on which delta or vega hedging trades occurred.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of daily net greeks with hedge flags.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return errResponse(id, name, err)
			}
			return okResponse(id, name, renderer.ExposureMarkdown(dispersion.NewGreeksSeries(b, cfg)))
		},
	}
}
