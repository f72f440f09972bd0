package openaicompat

import "time"

const (
	// QwenBaseURL is the DashScope OpenAI-compatible endpoint.
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenModel   = "qwen-plus"

	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	mimeJSON = "application/json"
)
