package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 2 * time.Minute}

func postJSON(path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		content, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("unable to marshal request: %w", err)
		}
		body = bytes.NewReader(content)
	}

	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(serverAddr, "/")+path, body)
	if err != nil {
		return fmt.Errorf("unable to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userName != "" {
		req.Header.Set("X-Forwarded-User", userName)
	}

	return do(req, out)
}

func getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, strings.TrimRight(serverAddr, "/")+path, nil)
	if err != nil {
		return fmt.Errorf("unable to build request: %w", err)
	}

	return do(req, out)
}

func do(req *http.Request, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("unable to reach server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("unable to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(content)))
	}

	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}

	return nil
}
