package summarizer

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/meetingassistant/meeting-assistant/internal/aiclient"
)

// openaiChat calls the OpenAI chat completion endpoint
type openaiChat struct {
	client *openai.Client
	model  string
}

func (o *openaiChat) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", aiclient.ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *openaiChat) name() string {
	return "openai"
}
