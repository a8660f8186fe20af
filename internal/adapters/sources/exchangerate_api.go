package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/internal/core/ports/services"
)

const exchangeRateAPIName = "exchangerate-api"

// ExchangeRateAPIClient fetches fiat rates from the ExchangeRate-API
// latest/USD endpoint. The provider quotes USD->X; rates are inverted into
// the canonical X_USD form before being returned.
type ExchangeRateAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewExchangeRateAPIClient creates an ExchangeRate-API source client.
func NewExchangeRateAPIClient(baseURL, apiKey string, timeout time.Duration) *ExchangeRateAPIClient {
	return &ExchangeRateAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ExchangeRateAPIClient) Name() string { return exchangeRateAPIName }
func (c *ExchangeRateAPIClient) Kind() string { return services.SourceKindFiat }

// FetchRates returns CODE_USD pairs for every supported fiat currency the
// provider quoted. Unsupported or zero-valued quotes are skipped.
func (c *ExchangeRateAPIClient) FetchRates(ctx context.Context, _ bool) (map[string]float64, error) {
	if c.apiKey == "" {
		return nil, &apperrors.SourceError{
			Source: exchangeRateAPIName,
			Err:    fmt.Errorf("no API key configured"),
		}
	}

	endpoint := fmt.Sprintf("%s/%s/latest/USD", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &apperrors.SourceError{Source: exchangeRateAPIName, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.SourceError{Source: exchangeRateAPIName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.SourceError{
			Source: exchangeRateAPIName,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.SourceError{Source: exchangeRateAPIName, Err: err}
	}

	if result := gjson.GetBytes(body, "result"); result.String() != "success" {
		return nil, &apperrors.SourceError{
			Source: exchangeRateAPIName,
			Err:    fmt.Errorf("provider reported %q: %s", result.String(), gjson.GetBytes(body, "error-type").String()),
		}
	}

	rates := make(map[string]float64)
	gjson.GetBytes(body, "conversion_rates").ForEach(func(key, value gjson.Result) bool {
		code := key.String()
		if code == "USD" || !domain.IsSupportedCurrency(code) {
			return true
		}
		usdToX := value.Float()
		if usdToX <= 0 {
			return true
		}
		rates[domain.PairKey(code, "USD")] = 1 / usdToX
		return true
	})
	if len(rates) == 0 {
		return nil, &apperrors.SourceError{
			Source: exchangeRateAPIName,
			Err:    fmt.Errorf("response contained no usable quotes"),
		}
	}
	return rates, nil
}
