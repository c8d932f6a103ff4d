package check

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agentflare-ai/go-xmldom"
	"github.com/agentflare-ai/go-xsd"
)

// DefaultFetchTimeout bounds remote schema downloads. There are no retries:
// a timeout or HTTP failure marks the file as unvalidated, never crashes
// the run.
const DefaultFetchTimeout = 10 * time.Second

// fetchSchema downloads an XSD over HTTP(S) and compiles it.
func (r *Runner) fetchSchema(url string) (*xsd.Schema, error) {
	timeout := r.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch XSD from %s: %w", url, err)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch XSD from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch XSD from %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch XSD from %s: %w", url, err)
	}

	doc, err := xmldom.NewDecoderFromBytes(body).Decode()
	if err != nil {
		return nil, fmt.Errorf("invalid XSD format from %s: %w", url, err)
	}
	schema, err := xsd.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid XSD format from %s: %w", url, err)
	}
	return schema, nil
}
