package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/internal/core/ports/services"
)

const coinGeckoName = "coingecko"

// CoinGeckoClient fetches crypto/USD rates from the CoinGecko simple-price
// endpoint for every supported crypto currency.
type CoinGeckoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCoinGeckoClient creates a CoinGecko source client.
func NewCoinGeckoClient(baseURL string, timeout time.Duration) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *CoinGeckoClient) Name() string { return coinGeckoName }
func (c *CoinGeckoClient) Kind() string { return services.SourceKindCrypto }

// FetchRates returns CODE_USD pairs for each supported crypto currency the
// provider quoted. Coins missing from the response are skipped, not errors.
func (c *CoinGeckoClient) FetchRates(ctx context.Context, _ bool) (map[string]float64, error) {
	codes := domain.CryptoCurrencyCodes()
	ids := make([]string, 0, len(codes))
	for _, code := range codes {
		if id, ok := domain.CoinIDFor(code); ok {
			ids = append(ids, id)
		}
	}

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		c.baseURL, url.QueryEscape(strings.Join(ids, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &apperrors.SourceError{Source: coinGeckoName, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.SourceError{Source: coinGeckoName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.SourceError{
			Source: coinGeckoName,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.SourceError{Source: coinGeckoName, Err: err}
	}

	rates := make(map[string]float64, len(codes))
	for _, code := range codes {
		id, ok := domain.CoinIDFor(code)
		if !ok {
			continue
		}
		price := gjson.GetBytes(body, id+".usd")
		if !price.Exists() || price.Float() <= 0 {
			continue
		}
		rates[domain.PairKey(code, "USD")] = price.Float()
	}
	if len(rates) == 0 {
		return nil, &apperrors.SourceError{
			Source: coinGeckoName,
			Err:    fmt.Errorf("response contained no usable prices"),
		}
	}
	return rates, nil
}
