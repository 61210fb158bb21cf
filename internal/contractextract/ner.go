package contractextract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// EntityLabel classifies a recognized span.
type EntityLabel string

const (
	LabelOrganization EntityLabel = "Organization"
	LabelPerson       EntityLabel = "Person"
)

type EntitySpan struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
}

// EntityRecognizer is an optional capability. The engine produces correct,
// if less rich, results when it is absent, and a recognizer failure degrades
// the run to pattern-only extraction rather than aborting it.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]EntitySpan, error)
}

const nerSystemPrompt = "You are a named-entity tagger for commercial contract text. " +
	"Respond with strict JSON only: an array of objects with fields \"text\" and \"label\", " +
	"where label is either \"Organization\" or \"Person\". Every \"text\" value must be an " +
	"exact substring of the input. Do not include any other entity kinds."

// nerTextLimit bounds how much contract text is sent per recognition call.
const nerTextLimit = 30000

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// AnthropicRecognizer backs EntityRecognizer with a Claude model.
type AnthropicRecognizer struct {
	messages AnthropicMessager
}

func NewAnthropicRecognizerFromEnv() (*AnthropicRecognizer, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return &AnthropicRecognizer{messages: newAnthropicClient(apiKey)}, nil
}

func (a *AnthropicRecognizer) Recognize(ctx context.Context, text string) ([]EntitySpan, error) {
	if len(text) > nerTextLimit {
		text = text[:nerTextLimit]
	}
	prompt := "Tag the organizations and persons in the following contract text.\n\n" + text

	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   2048,
		System:      []anthropic.TextBlockParam{{Text: nerSystemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return parseEntitySpans(sb.String(), text)
}

// parseEntitySpans decodes the model response and drops anything that is not
// a known label or not literally present in the source text.
func parseEntitySpans(payload, text string) ([]EntitySpan, error) {
	payload = stripJSONFence(payload)
	var raw []EntitySpan
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("decode entity spans: %w", err)
	}
	var spans []EntitySpan
	for _, s := range raw {
		s.Text = strings.TrimSpace(s.Text)
		if s.Text == "" {
			continue
		}
		if s.Label != LabelOrganization && s.Label != LabelPerson {
			continue
		}
		if !strings.Contains(text, s.Text) {
			continue
		}
		spans = append(spans, s)
	}
	return spans, nil
}

func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
