// Package remote is the HTTP client side of the agent execution protocol:
// batch submission, status polling, and job listing against one remote.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/s22625/agentcli/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client talks to a single remote execution backend.
type Client struct {
	remote     model.Remote
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client for the given remote.
func NewClient(remote model.Remote, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		remote: remote,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: log,
	}
}

// Remote returns the backend this client targets.
func (c *Client) Remote() model.Remote {
	return c.remote
}

// SubmitResult is the remote's synchronous answer to a batch submission.
// RequestID is empty when the remote did not hand back an identifier, in
// which case there is nothing to poll.
type SubmitResult struct {
	RequestID string
	Body      []byte
}

// Submit posts the request to /execute_batch. A non-200 response becomes a
// *RemoteError, a transport failure a *ConnectError. Submission is never
// retried; the caller decides what to tell the operator.
func (c *Client) Submit(ctx context.Context, req *model.AgentRequest) (*SubmitResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.remote.BaseURL() + "/execute_batch"
	c.log.Debug("submitting batch request",
		zap.String("remote", c.remote.Name),
		zap.String("url", url),
		zap.Int("agents", len(req.Agents)))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating submit request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ConnectError{Operation: "submitting to " + c.remote.Name, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectError{Operation: "reading submit response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteError{Operation: "submit", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var ack struct {
		RequestID string `json:"request_id"`
	}
	// The response body is otherwise opaque; a missing or malformed
	// request_id just means there is nothing to poll.
	_ = json.Unmarshal(respBody, &ack)

	c.log.Info("batch request accepted",
		zap.String("remote", c.remote.Name),
		zap.String("request_id", ack.RequestID))

	return &SubmitResult{RequestID: ack.RequestID, Body: respBody}, nil
}

// Status fetches one status observation for a previously submitted request.
func (c *Client) Status(ctx context.Context, requestID string) (*model.RequestStatus, error) {
	url := c.remote.BaseURL() + "/status/request/" + requestID

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating status request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ConnectError{Operation: "polling " + c.remote.Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectError{Operation: "reading status response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteError{Operation: "status check", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding status response: %w", err)
	}

	return &model.RequestStatus{
		RequestID: requestID,
		Status:    model.Status(payload.Status),
		Payload:   body,
	}, nil
}

// Jobs fetches the remote's job listing, most recent first. The wire order
// is oldest first, so the slice is reversed before returning.
func (c *Client) Jobs(ctx context.Context) ([]model.Job, error) {
	url := c.remote.BaseURL() + "/status/requests"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating jobs request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ConnectError{Operation: "listing jobs on " + c.remote.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &RemoteError{Operation: "job listing", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var jobs []model.Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("decoding jobs response: %w", err)
	}

	for i, j := 0, len(jobs)-1; i < j; i, j = i+1, j-1 {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	}

	return jobs, nil
}
