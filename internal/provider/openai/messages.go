package openai

import (
	"github.com/openai/openai-go"
	"github.com/spetersoncode/schemagen"
)

func convertMessages(messages []schemagen.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case schemagen.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}
