package server

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func messageTexts(messages []ConsoleMessage) []string {
	texts := make([]string, 0, len(messages))
	for _, msg := range messages {
		texts = append(texts, msg.Message)
	}
	return texts
}

func TestConsole_BasicLogging(t *testing.T) {
	console := NewConsole(10, nil)

	console.Printf("%s\n", "Test log message")

	messages := console.Messages()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	msg := messages[0]
	if msg.Message != "Test log message\n" {
		t.Errorf("Expected message 'Test log message\\n', got '%s'", msg.Message)
	}
	if msg.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", msg.Level)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestConsole_FormattedAndWarning(t *testing.T) {
	console := NewConsole(10, nil)

	console.Printf("Loaded scene %d (%s): %d primitives\n", 2, "light-row", 183)
	console.Warningf("unknown scene %d", 9)

	messages := console.Messages()
	want := []string{"Loaded scene 2 (light-row): 183 primitives\n", "unknown scene 9"}
	if diff := cmp.Diff(want, messageTexts(messages)); diff != "" {
		t.Errorf("Messages mismatch (-want +got):\n%s", diff)
	}
	if messages[1].Level != "warning" {
		t.Errorf("Expected level 'warning', got '%s'", messages[1].Level)
	}
}

func TestConsole_DropsOldest(t *testing.T) {
	console := NewConsole(2, nil)

	for _, msg := range []string{"Message 1", "Message 2", "Message 3"} {
		console.Printf("%s", msg)
	}

	want := []string{"Message 2", "Message 3"}
	if diff := cmp.Diff(want, messageTexts(console.Messages())); diff != "" {
		t.Errorf("Messages mismatch (-want +got):\n%s", diff)
	}
}

func TestConsole_ZeroCapacity(t *testing.T) {
	console := NewConsole(0, nil)

	console.Printf("Test message with no history\n")

	if got := len(console.Messages()); got != 0 {
		t.Errorf("Expected no retained messages, got %d", got)
	}
}

func TestConsole_MessagesIsCopy(t *testing.T) {
	console := NewConsole(4, nil)
	console.Printf("first")

	messages := console.Messages()
	messages[0].Message = "changed"

	if got := console.Messages()[0].Message; got != "first" {
		t.Errorf("Console history was modified through the returned slice: %q", got)
	}
}
