package components

import (
	"testing"

	cohere "github.com/cohere-ai/cohere-go/v2"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"

	"github.com/cinebrief/cinebrief/schema"
)

func TestMessageToOpenAI(t *testing.T) {
	msg := NewMessage(UserRole, schema.String("find inception"))
	dist := new(openai.ChatCompletionMessage)
	msg.ToOpenAI(dist)
	if dist.Role != UserRole {
		t.Errorf("expect role user, but got %s", dist.Role)
	}
	if dist.Content != "find inception" {
		t.Errorf("expect verbatim text content, but got %q", dist.Content)
	}
}

func TestMessageToOpenAIEncodesStructuredContent(t *testing.T) {
	msg := NewMessage(UserRole, schema.NewInput("find inception"))
	dist := new(openai.ChatCompletionMessage)
	msg.ToOpenAI(dist)
	if dist.Content != `{"chat_message":"find inception"}` {
		t.Errorf("expect JSON encoded content, but got %q", dist.Content)
	}
}

func TestMessageToAnthropic(t *testing.T) {
	msg := NewMessage(AssistantRole, schema.String("done"))
	dist := new(anthropic.Message)
	msg.ToAnthropic(dist)
	if dist.Role != anthropic.ChatRole(AssistantRole) {
		t.Errorf("expect role assistant, but got %s", dist.Role)
	}
	if len(dist.Content) != 1 {
		t.Fatalf("expect a single text part, but got %d", len(dist.Content))
	}
	if txt := dist.Content[0].Text; txt == nil || *txt != "done" {
		t.Errorf("expect text done, but got %v", txt)
	}
}

func TestMessageToCohereRoles(t *testing.T) {
	tests := []struct {
		role MessageRole
		want string
	}{
		{SystemRole, "SYSTEM"},
		{AssistantRole, "CHATBOT"},
		{UserRole, "USER"},
	}
	for _, tt := range tests {
		msg := NewMessage(tt.role, schema.String("hello"))
		dist := new(cohere.Message)
		msg.ToCohere(dist)
		if dist.Role != tt.want {
			t.Errorf("expect role %s for %s, but got %s", tt.want, tt.role, dist.Role)
		}
	}
	assistant := NewMessage(AssistantRole, schema.String("hello"))
	dist := new(cohere.Message)
	assistant.ToCohere(dist)
	if dist.Chatbot == nil || dist.Chatbot.Message != "hello" {
		t.Error("expect assistant text in the chatbot slot")
	}
	if dist.System != nil {
		t.Error("expect the system slot untouched for an assistant message")
	}
}
