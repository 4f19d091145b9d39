package storage

import (
	"bufio"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"strings"
)

// ProxyPool holds the parsed proxy URLs. One is chosen uniformly at random per
// outbound call; an empty pool means direct connections.
type ProxyPool struct {
	proxies []*url.URL
}

// NewProxyPool parses raw proxy URLs into a pool. Lines that do not parse as
// URLs are rejected.
func NewProxyPool(raw []string) (*ProxyPool, error) {
	pool := &ProxyPool{}
	for _, line := range raw {
		u, err := url.Parse(line)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy URL %q", line)
		}
		pool.proxies = append(pool.proxies, u)
	}
	return pool, nil
}

// Pick returns a random proxy URL, or nil when the pool is empty.
func (p *ProxyPool) Pick() *url.URL {
	if p == nil || len(p.proxies) == 0 {
		return nil
	}
	return p.proxies[rand.Intn(len(p.proxies))]
}

// Len returns the number of proxies in the pool.
func (p *ProxyPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.proxies)
}

// LoadProxies reads proxy.txt: one proxy URL per line, blank lines and
// #-comments ignored. A missing file is an error the caller downgrades to a
// warning.
func LoadProxies(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open proxy file: %w", err)
	}
	defer f.Close()

	var proxies []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read proxy file: %w", err)
	}

	return proxies, nil
}
