package pult

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/raksitnongbua/office-bot/constants"
	"github.com/raksitnongbua/office-bot/internal/core/domain"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Client talks to the Pult GraphQL endpoint.
type Client struct {
	endpoint string
	token    string
	timeout  time.Duration
	http     *fiber.Client
	logger   *zap.Logger
}

func NewClient(endpoint, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = constants.DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
		http:     &fiber.Client{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal},
		logger:   logger,
	}
}

// execute posts one named operation and returns the raw "data" member.
func (c *Client) execute(ctx context.Context, req graphQLRequest) (json.RawMessage, error) {
	op := req.OperationName
	if err := ctx.Err(); err != nil {
		return nil, &domain.NetworkError{Operation: op, Err: err}
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	agent := c.http.Post(c.endpoint)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	agent.Set(fiber.HeaderOrigin, constants.PultOrigin)
	agent.Referer(constants.PultReferer)
	agent.UserAgent(constants.BrowserAgent)
	agent.Timeout(timeout)
	agent.JSON(req)

	started := time.Now()
	code, body, errs := agent.Bytes()
	c.logger.Debug("graphql request",
		zap.String("operation", op),
		zap.Int("status", code),
		zap.Duration("elapsed", time.Since(started)))
	if len(errs) > 0 {
		return nil, &domain.NetworkError{Operation: op, Err: errors.Join(errs...)}
	}

	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if code >= fiber.StatusMultipleChoices {
			return nil, &domain.RemoteError{Operation: op, Message: fmt.Sprintf("unexpected status %d", code)}
		}
		return nil, &domain.RemoteError{Operation: op, Message: fmt.Sprintf("decode response: %v", err)}
	}
	if len(resp.Errors) > 0 {
		return nil, &domain.RemoteError{Operation: op, Message: resp.Errors[0].Message}
	}
	if code >= fiber.StatusMultipleChoices {
		return nil, &domain.RemoteError{Operation: op, Message: fmt.Sprintf("unexpected status %d", code)}
	}
	return resp.Data, nil
}
