package model

import "github.com/spetersoncode/schemagen"

// ChatModel represents a chat-completion model offered by a provider.
type ChatModel struct {
	id       string
	provider schemagen.Provider
}

// New describes a model that is not part of the built-in catalog.
func New(id string, provider schemagen.Provider) ChatModel {
	return ChatModel{id: id, provider: provider}
}

// ID returns the API identifier for this model.
func (m ChatModel) ID() string { return m.id }

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider serves this model.
func (m ChatModel) Provider() schemagen.Provider { return m.provider }

// Models served by the OpenAI-compatible MWS GPT endpoint.
var (
	MWSGPTAlpha              = ChatModel{id: "mws-gpt-alpha", provider: schemagen.ProviderOpenAI}
	Qwen25_32BInstruct       = ChatModel{id: "qwen2.5-32b-instruct", provider: schemagen.ProviderOpenAI}
	Llama33_70BInstruct      = ChatModel{id: "llama-3.3-70b-instruct", provider: schemagen.ProviderOpenAI}
	Llama31_8BInstruct       = ChatModel{id: "llama-3.1-8b-instruct", provider: schemagen.ProviderOpenAI}
	Qwen25_72BInstruct       = ChatModel{id: "qwen2.5-72b-instruct", provider: schemagen.ProviderOpenAI}
	Gemma3_27BIT             = ChatModel{id: "gemma-3-27b-it", provider: schemagen.ProviderOpenAI}
	DeepSeekR1DistillQwen32B = ChatModel{id: "deepseek-r1-distill-qwen-32b", provider: schemagen.ProviderOpenAI}

	// Default is the model used when none is configured.
	Default = Qwen25_32BInstruct
)

// Defaults for the alternative providers.
var (
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: schemagen.ProviderAnthropic}
	Gemini25Flash  = ChatModel{id: "gemini-2.5-flash", provider: schemagen.ProviderGoogle}
)

// Available lists the models offered by the default endpoint, in display order.
var Available = []ChatModel{
	MWSGPTAlpha,
	Qwen25_32BInstruct,
	Llama33_70BInstruct,
	Llama31_8BInstruct,
	Qwen25_72BInstruct,
	Gemma3_27BIT,
	DeepSeekR1DistillQwen32B,
}

// IDs returns the identifiers of Available.
func IDs() []string {
	ids := make([]string, len(Available))
	for i, m := range Available {
		ids[i] = m.id
	}
	return ids
}

// Lookup finds a model in Available by identifier.
func Lookup(id string) (ChatModel, bool) {
	for _, m := range Available {
		if m.id == id {
			return m, true
		}
	}
	return ChatModel{}, false
}

// DefaultFor returns the default model for a provider.
func DefaultFor(p schemagen.Provider) ChatModel {
	switch p {
	case schemagen.ProviderAnthropic:
		return ClaudeSonnet45
	case schemagen.ProviderGoogle:
		return Gemini25Flash
	default:
		return Default
	}
}
