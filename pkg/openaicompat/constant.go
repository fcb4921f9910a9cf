package openaicompat

import "time"

const (
	// DefaultModel is used when the config leaves the model empty.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 60 * time.Second
)

// Well-known OpenAI-compatible endpoints.
const (
	BaseURLOpenAI   = "https://api.openai.com/v1/"
	BaseURLDeepSeek = "https://api.deepseek.com/v1/"
	BaseURLQwen     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1/"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)
