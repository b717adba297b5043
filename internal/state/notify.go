package state

import (
	"log"
	"sync"
)

// Notifier receives user-facing outcome messages. Every failed operation
// reports through Error; mutations report through Success.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(message string) { log.Printf("[bildirim] %s", message) }
func (LogNotifier) Error(message string)   { log.Printf("[hata] %s", message) }

// RecordingNotifier collects notifications in memory.
type RecordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *RecordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *RecordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *RecordingNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

func (n *RecordingNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}
