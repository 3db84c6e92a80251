package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/yungbote/mindpulse-backend/internal/observability"
	"github.com/yungbote/mindpulse-backend/internal/platform/ctxutil"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

const (
	Provider         = "anthropic"
	DefaultBaseURL   = "https://api.anthropic.com"
	DefaultModel     = "claude-3-7-sonnet-20250219"
	DefaultMaxTokens = 1500
)

var (
	ErrMissingAPIKey = errors.New("missing ANTHROPIC_API_KEY")
	ErrNoJSON        = errors.New("no JSON object in model output")
	ErrNoText        = errors.New("no text content in response")
)

// jsonBlock spans the first '{' through the last '}' of the reply.
var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// Client talks to the Messages API. Each call is a single attempt.
type Client interface {
	// GenerateJSON asks for free text and parses the brace-delimited block out of it. The
	// schema is not sent; the system prompt must describe the shape.
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)

	GenerateText(ctx context.Context, system string, user string) (string, error)
}

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type client struct {
	log       *logger.Logger
	api       sdk.Client
	model     string
	maxTokens int64
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 180 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &client{
		log: log.With("client", "AnthropicClient"),
		api: sdk.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL+"/"),
			option.WithMaxRetries(0),
			option.WithHTTPClient(&http.Client{Timeout: timeout}),
		),
		model:     model,
		maxTokens: int64(maxTokens),
	}, nil
}

// ExtractJSON parses the first brace-delimited block of text as a JSON object.
func ExtractJSON(text string) (map[string]any, error) {
	block := jsonBlock.FindString(text)
	if block == "" {
		return nil, ErrNoJSON
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(block), &obj); err != nil {
		return nil, fmt.Errorf("failed to parse model JSON: %w", err)
	}
	return obj, nil
}

func (c *client) GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error) {
	text, err := c.GenerateText(ctx, system, user)
	if err != nil {
		return nil, err
	}
	obj, err := ExtractJSON(text)
	if err != nil {
		c.log.Warn("Anthropic reply carried no usable JSON", append(ctxutil.LogFields(ctx), "schema", schemaName, "error", err)...)
		return nil, err
	}
	return obj, nil
}

func (c *client) GenerateText(ctx context.Context, system string, user string) (string, error) {
	start := time.Now()
	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(user))},
	})
	if err != nil {
		observability.Current().ObserveLLMRequest(Provider, c.model, statusOf(err), time.Since(start), 0, 0)
		c.log.Warn("Anthropic request failed", append(ctxutil.LogFields(ctx), "error", err)...)
		return "", err
	}
	observability.Current().ObserveLLMRequest(Provider, c.model, strconv.Itoa(http.StatusOK), time.Since(start),
		int(msg.Usage.InputTokens), int(msg.Usage.OutputTokens))

	parts := make([]string, 0, len(msg.Content))
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	text := strings.Join(parts, "\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func statusOf(err error) string {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "error"
}
