package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const Localhost = "Localhost"

const DefaultLocatorTimeout = 3 * time.Second

// Locator resolves an approximate location for a client address using an
// ip-api.com compatible endpoint.
type Locator struct {
	baseURL string
	client  *http.Client
}

func NewLocator(baseURL string, timeout time.Duration) *Locator {
	if timeout <= 0 {
		timeout = DefaultLocatorTimeout
	}
	return &Locator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type ipAPIResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Country    string `json:"country"`
}

// Resolve never fails: loopback addresses map to Localhost and every lookup
// failure maps to Unknown.
func (l *Locator) Resolve(ctx context.Context, address string) string {
	address = strings.TrimSpace(address)
	if IsLoopback(address) {
		return Localhost
	}
	if address == "" || address == Unknown {
		return Unknown
	}

	location, err := l.lookup(ctx, address)
	if err != nil {
		log.Warn().Err(err).Str("ip", address).Msg("ip location lookup failed")
		return Unknown
	}
	return location
}

func (l *Locator) lookup(ctx context.Context, address string) (string, error) {
	endpoint := fmt.Sprintf("%s/json/%s", l.baseURL, url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if body.Status != "success" {
		return "", fmt.Errorf("lookup status %q: %s", body.Status, body.Message)
	}

	return fmt.Sprintf("%s, %s, %s", body.City, body.RegionName, body.Country), nil
}

// IsLoopback accepts IPv4 and IPv6 loopback forms, including IPv4-mapped
// IPv6 such as ::ffff:127.0.0.1.
func IsLoopback(address string) bool {
	address = strings.TrimSpace(address)
	if strings.EqualFold(address, "localhost") {
		return true
	}
	ip := net.ParseIP(address)
	return ip != nil && ip.IsLoopback()
}
