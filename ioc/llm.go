package ioc

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// InitGeminiCli 未配置 api key 时返回 nil, 报告不附加点评
func InitGeminiCli(cfg GeminiConfig) *genai.Client {
	if len(cfg.ApiKey) == 0 || cfg.ApiKey[0] == "" {
		return nil
	}

	cli, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.ApiKey[0]))
	if err != nil {
		panic(err)
	}
	return cli
}
