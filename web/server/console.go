package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/log"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// Console keeps the most recent render messages for the browser and forwards them to the server log.
// It implements core.Logger.
type Console struct {
	mu       sync.Mutex
	capacity int
	messages []ConsoleMessage
	logger   log.Logger
}

// NewConsole creates a console holding at most capacity messages
func NewConsole(capacity int, logger log.Logger) *Console {
	return &Console{capacity: capacity, logger: logger}
}

// Printf implements core.Logger
func (c *Console) Printf(format string, args ...interface{}) {
	c.add("info", fmt.Sprintf(format, args...))
}

// Warningf records a warning
func (c *Console) Warningf(format string, args ...interface{}) {
	c.add("warning", fmt.Sprintf(format, args...))
}

func (c *Console) add(level, message string) {
	if c.logger != nil {
		text := strings.TrimRight(message, "\n")
		if level == "warning" {
			c.logger.Warning(text)
		} else {
			c.logger.Info(text)
		}
	}
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == c.capacity {
		// Oldest message is dropped
		copy(c.messages, c.messages[1:])
		c.messages = c.messages[:len(c.messages)-1]
	}
	c.messages = append(c.messages, ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	})
}

// Messages returns a copy of the retained messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ConsoleMessage, len(c.messages))
	copy(out, c.messages)
	return out
}
