package gameclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"piggy-game-bot/internal/models"
)

const (
	checkCodePath   = "/api/trpc/piggyGame.checkGameCode?batch=1"
	recordScorePath = "/api/trpc/piggyGame.recordGameScore?batch=1"
	gameReferer     = "/en/game/piggy-game?mode=regular"
)

// CheckGameCode submits a synthesized game code for validation. Only HTTP 200
// counts as success.
func (c *Client) CheckGameCode(ctx context.Context, account models.Account, gameCode string) models.StepResult {
	return c.post(ctx, account, checkCodePath, map[string]any{"gameCode": gameCode})
}

// RecordScore submits a simulated score for a validated game code.
func (c *Client) RecordScore(ctx context.Context, account models.Account, score int) models.StepResult {
	return c.post(ctx, account, recordScorePath, map[string]any{"score": score})
}

// post wraps the payload in the tRPC batch envelope {"0":{"json":{...}}} and
// POSTs it with the account's session cookie. Transport errors and non-200
// statuses both come back as failed step results, never as panics.
func (c *Client) post(ctx context.Context, account models.Account, path string, payload map[string]any) models.StepResult {
	envelope := map[string]map[string]any{"0": {"json": payload}}
	body, err := json.Marshal(envelope)
	if err != nil {
		return models.StepFailed(0, fmt.Sprintf("failed to encode payload: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return models.StepFailed(0, fmt.Sprintf("failed to build request: %v", err))
	}

	c.setHeaders(req, account)

	c.log.Debug().Str("account", account.Name).Str("path", path).Msg("calling game API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.StepFailed(0, err.Error())
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode != http.StatusOK {
		return models.StepFailed(resp.StatusCode, fmt.Sprintf("unexpected status: %s", resp.Status))
	}

	return models.StepOK(resp.StatusCode)
}

// setHeaders mimics the headers the game frontend sends, with a freshly
// randomized user-agent per call.
func (c *Client) setHeaders(req *http.Request, account models.Account) {
	req.Header.Set("accept", "*/*")
	req.Header.Set("accept-language", "zh-CN,zh;q=0.9,en;q=0.8,zh-TW;q=0.7,ja;q=0.6,fr;q=0.5,ru;q=0.4,und;q=0.3")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("origin", c.baseURL)
	req.Header.Set("referer", c.baseURL+gameReferer)
	req.Header.Set("user-agent", c.userAgents.Pick())
	req.Header.Set("sec-ch-ua", `"Google Chrome";v="141", "Not?A_Brand";v="8", "Chromium";v="141"`)
	req.Header.Set("sec-ch-ua-mobile", "?0")
	req.Header.Set("sec-ch-ua-platform", `"macOS"`)
	req.Header.Set("sec-fetch-dest", "empty")
	req.Header.Set("sec-fetch-mode", "cors")
	req.Header.Set("sec-fetch-site", "same-origin")
	req.Header.Set("trpc-accept", "application/jsonl")
	req.Header.Set("x-trpc-source", "nextjs-react")
	req.Header.Set("cookie", sessionCookie(account))
}

// sessionCookie builds the cookie header from the account's session token plus
// any extra raw cookies.
func sessionCookie(account models.Account) string {
	cookie := "__Secure-authjs.session-token=" + account.SessionToken
	if account.Cookies != "" {
		cookie += "; " + account.Cookies
	}
	return cookie
}
