package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIModel is the OpenAI model used for content generation.
const OpenAIModel = openai.ChatModelGPT4_1Mini

type OpenAIProvider struct {
	client      *openai.Client
	usage       Usage
	inputPrice  float64 // per 1M tokens
	outputPrice float64 // per 1M tokens
}

func NewOpenAIProvider(apiKey string, pricing RequestPricing) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, &Error{Kind: KindConfig, Message: "OPENAI_TOKEN environment variable is required"}
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client:      &client,
		inputPrice:  pricing.Input,
		outputPrice: pricing.Output,
	}, nil
}

func (p *OpenAIProvider) Name() string {
	return OpenAIModel
}

func (p *OpenAIProvider) GetUsage() *Usage {
	return &p.usage
}

func (p *OpenAIProvider) ResetUsage() {
	p.usage = Usage{}
}

func (p *OpenAIProvider) trackUsage(inputTokens, outputTokens int64) {
	p.usage.InputTokens += int(inputTokens)
	p.usage.OutputTokens += int(outputTokens)
	p.usage.TotalCost += float64(inputTokens) / 1_000_000 * p.inputPrice
	p.usage.TotalCost += float64(outputTokens) / 1_000_000 * p.outputPrice
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: OpenAIModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(float64(opts.Temperature))
	}
	if opts.MaxOutputTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxOutputTokens))
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	p.trackUsage(completion.Usage.PromptTokens, completion.Usage.CompletionTokens)

	if len(completion.Choices) == 0 {
		return "", &Error{Kind: KindService, Message: "no response from OpenAI"}
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", &Error{Kind: KindService, Message: "empty response from OpenAI"}
	}

	return content, nil
}

// classifyOpenAIError maps an openai-go error into the local error taxonomy.
func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return statusError("openai", apiErr.StatusCode, fmt.Errorf("openai API error: %w", err))
	}
	return networkError("openai", err)
}
