package components

import (
	"testing"

	"github.com/cinebrief/cinebrief/schema"
)

func TestMemoryOverflowDropsOldest(t *testing.T) {
	memory := NewMemory(3)
	for _, txt := range []string{"one", "two", "three", "four"} {
		memory.NewMessage(UserRole, schema.NewString(txt))
	}
	if got := memory.MessageCount(); got != 3 {
		t.Fatalf("expect 3 messages, but got %d", got)
	}
	history := memory.History()
	if v, ok := history[0].Content().(*schema.String); !ok || v.String() != "two" {
		t.Errorf("expect oldest message dropped, but history starts with %v", history[0].Content())
	}
}

func TestMemoryDeleteTurn(t *testing.T) {
	memory := NewMemory(10)
	memory.NewTurn()
	first := memory.TurnID()
	memory.NewMessage(UserRole, schema.NewString("question"))
	memory.NewMessage(AssistantRole, schema.NewString("answer"))
	memory.NewTurn()
	memory.NewMessage(UserRole, schema.NewString("followup"))

	if err := memory.DeleteTurn(first); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := memory.MessageCount(); got != 1 {
		t.Errorf("expect 1 message left, but got %d", got)
	}
	if err := memory.DeleteTurn(first); err == nil {
		t.Error("expect an error deleting an unknown turn")
	}
}

func TestMemoryDeleteCurrentTurnRewindsTurnID(t *testing.T) {
	memory := NewMemory(10)
	memory.NewTurn()
	first := memory.TurnID()
	memory.NewMessage(UserRole, schema.NewString("question"))
	memory.NewTurn()
	current := memory.TurnID()
	memory.NewMessage(UserRole, schema.NewString("followup"))

	if err := memory.DeleteTurn(current); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := memory.TurnID(); got != first {
		t.Errorf("expect turn ID rewound to %s, but got %s", first, got)
	}
}

func TestMemoryCopyIsIndependent(t *testing.T) {
	src := NewMemory(10)
	src.NewTurn()
	src.NewMessage(UserRole, schema.NewString("original"))

	dst := NewMemory(0)
	dst.Copy(src)
	if dst.MessageCount() != 1 || dst.TurnID() != src.TurnID() {
		t.Fatal("copy did not carry history and turn ID")
	}
	src.NewMessage(UserRole, schema.NewString("later"))
	if got := dst.MessageCount(); got != 1 {
		t.Errorf("expect copy unaffected by source growth, but got %d messages", got)
	}
}

func TestMemoryReset(t *testing.T) {
	memory := NewMemory(10)
	memory.NewMessage(UserRole, schema.NewString("something"))
	memory.Reset()
	if got := memory.MessageCount(); got != 0 {
		t.Errorf("expect empty history after reset, but got %d", got)
	}
}
