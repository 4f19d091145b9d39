package gameclient

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"piggy-game-bot/internal/models"
	"piggy-game-bot/internal/storage"
)

// Client talks to the game's tRPC endpoints. Every outbound call gets a fresh
// random user-agent and, when the proxy pool is non-empty, a random proxy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgents *storage.UserAgentPool
	log        zerolog.Logger
}

// New creates a game API client. The remote service rejects requests without
// browser TLS fingerprints often enough that certificate verification is
// disabled, matching how the game's own frontend is accessed through proxies.
func New(cfg models.Config, proxies *storage.ProxyPool, userAgents *storage.UserAgentPool, log zerolog.Logger) *Client {
	transport := &http.Transport{
		// Proxy is resolved per request so each call can go through a
		// different pool member. A nil URL means direct connection.
		Proxy: func(*http.Request) (*url.URL, error) {
			return proxies.Pick(), nil
		},
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: true},
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       30 * time.Second,
		ForceAttemptHTTP2:     true,
		ResponseHeaderTimeout: cfg.RequestTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		baseURL:    cfg.BaseURL,
		userAgents: userAgents,
		log:        log,
	}
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
