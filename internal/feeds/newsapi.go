package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/digest"
)

const newsAPIURL = "https://newsapi.org/v2"

// NewsAPI searches the /v2/everything endpoint, most recent first.
type NewsAPI struct {
	apiKey  string
	baseURL string
	http    *http.Client
	clk     clock.Clock
	log     *zap.Logger
}

func NewNewsAPI(apiKey string, client *http.Client, clk clock.Clock, log *zap.Logger) *NewsAPI {
	return &NewsAPI{apiKey: apiKey, baseURL: newsAPIURL, http: client, clk: clk, log: log}
}

type newsResponse struct {
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Search implements digest.NewsProvider for one query attempt.
func (c *NewsAPI) Search(ctx context.Context, q digest.NewsQuery) ([]digest.Article, error) {
	params := url.Values{
		"apiKey":   {c.apiKey},
		"sortBy":   {"publishedAt"},
		"language": {"en"},
		"pageSize": {strconv.Itoa(q.PageSize)},
	}
	if len(q.Sources) > 0 {
		params.Set("sources", strings.Join(q.Sources, ","))
	}
	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.FromDays > 0 {
		from := c.clk.Now().AddDate(0, 0, -q.FromDays)
		params.Set("from", from.Format(time.DateOnly))
	}

	var resp newsResponse
	if err := getJSON(ctx, c.http, c.baseURL+"/everything?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("newsapi: search: %w", err)
	}

	out := make([]digest.Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		out = append(out, digest.Article{Title: a.Title, Source: a.Source.Name, URL: a.URL})
	}
	return out, nil
}
