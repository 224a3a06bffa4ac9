// Package feeds holds the HTTP clients behind the digest provider
// interfaces: OpenWeatherMap, NewsAPI, and Alpha Vantage. Each client takes
// an injected http.Client and base URL so tests can point it at a local
// server.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/digest"
)

const (
	openWeatherGeoURL  = "https://api.openweathermap.org/geo/1.0"
	openWeatherDataURL = "https://api.openweathermap.org/data/2.5"
)

// OpenWeather resolves place names through the geocoding endpoint, then
// fetches current conditions by coordinate.
type OpenWeather struct {
	apiKey  string
	units   string
	geoURL  string
	dataURL string
	http    *http.Client
	log     *zap.Logger
}

func NewOpenWeather(apiKey, units string, client *http.Client, log *zap.Logger) *OpenWeather {
	return &OpenWeather{
		apiKey:  apiKey,
		units:   units,
		geoURL:  openWeatherGeoURL,
		dataURL: openWeatherDataURL,
		http:    client,
		log:     log,
	}
}

type geoResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type weatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Name string `json:"name"`
}

// Current implements digest.WeatherProvider for one location candidate.
func (c *OpenWeather) Current(ctx context.Context, location string) (digest.Weather, error) {
	geo, err := c.geocode(ctx, location)
	if err != nil {
		return digest.Weather{}, err
	}

	q := url.Values{
		"lat":   {fmt.Sprintf("%f", geo.Lat)},
		"lon":   {fmt.Sprintf("%f", geo.Lon)},
		"appid": {c.apiKey},
		"units": {c.units},
	}
	var resp weatherResponse
	if err := getJSON(ctx, c.http, c.dataURL+"/weather?"+q.Encode(), &resp); err != nil {
		return digest.Weather{}, fmt.Errorf("openweather: conditions for %s: %w", geo.Name, err)
	}

	w := digest.Weather{
		City:      resp.Name,
		Temp:      resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		Humidity:  resp.Main.Humidity,
	}
	if len(resp.Weather) > 0 {
		w.Description = titleCase(resp.Weather[0].Description)
	}
	w.RainPct = rainPct(resp)
	return w, nil
}

func (c *OpenWeather) geocode(ctx context.Context, location string) (geoResult, error) {
	q := url.Values{
		"q":     {location},
		"limit": {"1"},
		"appid": {c.apiKey},
	}
	var results []geoResult
	if err := getJSON(ctx, c.http, c.geoURL+"/direct?"+q.Encode(), &results); err != nil {
		return geoResult{}, fmt.Errorf("openweather: geocode %q: %w", location, err)
	}
	if len(results) == 0 {
		return geoResult{}, fmt.Errorf("openweather: geocode %q: %w", location, digest.ErrNoLocation)
	}
	return results[0], nil
}

// rainPct estimates precipitation likelihood: the last hour's rainfall in mm
// scaled to a rough percent, or a flat 60 when the description mentions rain
// without a measured amount.
func rainPct(resp weatherResponse) float64 {
	if resp.Rain.OneHour > 0 {
		return resp.Rain.OneHour * 10
	}
	for _, w := range resp.Weather {
		if strings.Contains(strings.ToLower(w.Description), "rain") {
			return 60
		}
	}
	return 0
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
