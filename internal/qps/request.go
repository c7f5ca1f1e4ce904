package qps

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIError represents an error response from the QPS API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qps api error %d: %s", e.StatusCode, e.Message)
}

// doRequest POSTs an XML document to the given path and returns the raw
// response body. Every call is a single attempt; failures are terminal
// for their unit of work.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, body []byte) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml")
	req.SetBasicAuth(c.login, c.password)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       respBody,
		}
	}

	return respBody, nil
}

// post sends a ServiceRequest document and decodes the XML response
// into result.
func (c *Client) post(ctx context.Context, path string, query url.Values, doc ServiceRequest, result any) error {
	body, err := encodeRequest(doc)
	if err != nil {
		return err
	}

	respBody, err := c.doRequest(ctx, path, query, body)
	if err != nil {
		return err
	}

	if err := xml.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// encodeRequest serializes a ServiceRequest with the XML declaration
// the service expects.
func encodeRequest(doc ServiceRequest) ([]byte, error) {
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
