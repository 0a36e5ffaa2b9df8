package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LLMClient 封装OpenAI兼容模型，Chat用于对话，Classify要求JSON输出
type LLMClient struct {
	Chat     llms.Model
	Classify llms.Model
}

func NewLLMClient(apiKey, apiEndpoint, model string) (*LLMClient, error) {
	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}

	classify, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create classify client: %w", err)
	}

	return &LLMClient{
		Chat:     chat,
		Classify: classify,
	}, nil
}
