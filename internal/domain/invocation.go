package domain

import (
	"encoding/json"
	"sync"
	"time"
)

// InvocationRecord is one successful remote function call.
type InvocationRecord struct {
	FunctionName  string          `json:"functionName"`
	Arguments     json.RawMessage `json:"arguments"`
	Result        json.RawMessage `json:"result"`
	ElapsedMillis int64           `json:"elapsedMillis"`
	InvokedAt     time.Time       `json:"invokedAt"`
}

// Ledger holds invocation records newest first. Records are never removed.
type Ledger struct {
	mu      sync.RWMutex
	records []InvocationRecord
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Prepend(record InvocationRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append([]InvocationRecord{record}, l.records...)
}

func (l *Ledger) Records() []InvocationRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]InvocationRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}
