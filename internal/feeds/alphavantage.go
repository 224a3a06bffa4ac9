package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/digest"
)

const alphaVantageURL = "https://www.alphavantage.co"

// AlphaVantage fetches quotes through the GLOBAL_QUOTE function. The API
// names fields with numeric prefixes and returns every value as a string.
type AlphaVantage struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewAlphaVantage(apiKey string, client *http.Client, log *zap.Logger) *AlphaVantage {
	return &AlphaVantage{apiKey: apiKey, baseURL: alphaVantageURL, http: client, log: log}
}

type quoteResponse struct {
	GlobalQuote struct {
		Symbol    string `json:"01. symbol"`
		Price     string `json:"05. price"`
		Change    string `json:"09. change"`
		ChangePct string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// Quote implements digest.StockProvider for one symbol.
func (c *AlphaVantage) Quote(ctx context.Context, symbol string) (digest.Quote, error) {
	params := url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {symbol},
		"apikey":   {c.apiKey},
	}
	var resp quoteResponse
	if err := getJSON(ctx, c.http, c.baseURL+"/query?"+params.Encode(), &resp); err != nil {
		return digest.Quote{}, fmt.Errorf("alphavantage: quote %s: %w", symbol, err)
	}
	if resp.GlobalQuote.Price == "" {
		return digest.Quote{}, fmt.Errorf("alphavantage: no quote data for %s", symbol)
	}

	price, err := strconv.ParseFloat(resp.GlobalQuote.Price, 64)
	if err != nil {
		return digest.Quote{}, fmt.Errorf("alphavantage: parse price for %s: %w", symbol, err)
	}
	change, err := strconv.ParseFloat(resp.GlobalQuote.Change, 64)
	if err != nil {
		return digest.Quote{}, fmt.Errorf("alphavantage: parse change for %s: %w", symbol, err)
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(resp.GlobalQuote.ChangePct, "%"), 64)
	if err != nil {
		return digest.Quote{}, fmt.Errorf("alphavantage: parse change percent for %s: %w", symbol, err)
	}

	return digest.Quote{Symbol: symbol, Price: price, Change: change, ChangePct: pct}, nil
}
