package agent

import (
	"context"
	"fmt"

	"github.com/agridesk/stockbook"
	"github.com/agridesk/stockbook/renderer"
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

			The user runs a small farm supply shop and keeps a stock ledger. He is here primarily to
			understand his stock levels, sales and profit, or to get market context about the goods he trades.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know his products and ledger, check the bookkeeper first to understand them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates an expert grounded in web search for market context.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst,
		well aware of commodity and agricultural supply markets,
		fertilizer and grain prices, and the latest relevant news.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an analyst of agricultural supply markets. You can search and find anything related
			to commodity prices, fertilizers, seeds, feed, and the businesses that trade them.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of reading the user's stock
// ledger. The loader is called on every question so answers always reflect
// the document on disk.
func NewBookkeeper(load func() (*stockbook.Book, error)) *Expert {
	lib := []Function{
		summaryFunc(load),
		ledgerFunc(load),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's stock ledger.
		He can report current stock levels, sales, purchases and profit per product.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's stock ledger.
				You know how to use the Tools to extract relevant information about the user's
				products, stock levels, sales and profit.
				You are part of a team of experts, yours is everything recorded in the ledger.
				They might ask you questions about it, pardon their approximative language and
				figure out what they meant.

				Use the available tools to get information about the user's business:
				  - per product and overall summary
				  - the raw transaction history
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func summaryFunc(load func() (*stockbook.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary aggregates the whole ledger per product: quantities received and sold,
			current stock, total purchase, total sales, profit and margin, plus overall totals.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted per-product summary of the ledger with overall totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			out := renderer.SummaryMarkdown(stockbook.Summarize(b.Ledger), stockbook.NewOverview(b.Ledger))
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Summary",
				Response: map[string]any{
					"output": out,
				},
			}
		},
	}
}

func ledgerFunc(load func() (*stockbook.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Ledger",
			Description: `Ledger lists the raw transaction history in the order it was recorded,
			optionally restricted to a single product.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"product": {
						Type:        genai.TypeString,
						Description: "Exact product name to restrict the listing to. All products by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return errorResponse(id, "Ledger", err)
			}

			title := "Ledger"
			var txs []stockbook.Transaction
			if iproduct, ok := args["product"]; ok {
				product, ok := iproduct.(string)
				if !ok {
					return errorResponse(id, "Ledger", fmt.Errorf("argument 'product' is not a string as expected but %T", iproduct))
				}
				title = fmt.Sprintf("Ledger for %s", product)
				txs = b.Ledger.Slice(stockbook.ByProduct(product))
			} else {
				txs = b.Ledger.Slice()
			}

			return &genai.FunctionResponse{
				ID:   id,
				Name: "Ledger",
				Response: map[string]any{
					"output": renderer.LedgerMarkdown(title, txs),
				},
			}
		},
	}
}
