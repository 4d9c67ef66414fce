package google

import (
	"strings"

	"github.com/spetersoncode/schemagen"
	"google.golang.org/genai"
)

// convertMessages returns the user contents and the system instruction,
// which Gemini takes out of band.
func convertMessages(messages []schemagen.Message) ([]*genai.Content, *genai.Content) {
	var contents []*genai.Content
	var system []string

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		if msg.Role == schemagen.RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
	}

	if len(system) == 0 {
		return contents, nil
	}
	return contents, genai.NewContentFromText(strings.Join(system, "\n"), genai.RoleUser)
}
