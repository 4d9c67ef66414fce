package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/schemagen"
)

// convertMessages splits system instructions from the conversation.
// Empty messages are dropped since the API rejects empty text blocks.
func convertMessages(messages []schemagen.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case schemagen.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return result, system
}
