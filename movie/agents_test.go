package movie

import (
	"strings"
	"testing"
)

func TestRefinerSystemPrompt(t *testing.T) {
	agent := NewRefinerAgent()
	if agent.Name() != RefinerName {
		t.Errorf("expect name %s, but got %s", RefinerName, agent.Name())
	}
	prompt := agent.SystemPrompt()
	for _, want := range []string{"movie title expert", "official release title", "JSON schema"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expect %q in refiner prompt, but got:\n%s", want, prompt)
		}
	}
}

func TestEnhancerSystemPrompt(t *testing.T) {
	agent := NewEnhancerAgent()
	if agent.Name() != EnhancerName {
		t.Errorf("expect name %s, but got %s", EnhancerName, agent.Name())
	}
	prompt := agent.SystemPrompt()
	for _, want := range []string{"first 5 actors", "more engaging", "Never invent facts"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expect %q in enhancer prompt, but got:\n%s", want, prompt)
		}
	}
}

func TestFormatterSystemPrompt(t *testing.T) {
	agent := NewFormatterAgent()
	if agent.Name() != FormatterName {
		t.Errorf("expect name %s, but got %s", FormatterName, agent.Name())
	}
	prompt := agent.SystemPrompt()
	for _, want := range []string{"_summary.txt", "ruler lines", "JSON schema"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expect %q in formatter prompt, but got:\n%s", want, prompt)
		}
	}
	// the formatter prompt is free-form, not the chain-of-thought scaffold
	if strings.Contains(prompt, "INTERNAL ASSISTANT STEPS") {
		t.Error("expect a free-form formatter prompt without reasoning sections")
	}
}
