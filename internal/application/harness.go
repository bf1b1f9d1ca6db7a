package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

// Harness runs remote function calls and records the successful ones.
type Harness struct {
	ledger   *domain.Ledger
	clock    ports.Clock
	logger   *zap.Logger
	inFlight atomic.Bool

	mu      sync.Mutex
	lastErr error
}

func NewHarness(ledger *domain.Ledger, clock ports.Clock, logger *zap.Logger) *Harness {
	if ledger == nil {
		ledger = domain.NewLedger()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Harness{ledger: ledger, clock: clock, logger: logger}
}

func (h *Harness) Invoke(ctx context.Context, session *Session, cmd InvokeCommand) (domain.InvocationRecord, error) {
	record, err := h.invoke(ctx, session, cmd)

	h.mu.Lock()
	h.lastErr = err
	h.mu.Unlock()

	return record, err
}

func (h *Harness) invoke(ctx context.Context, session *Session, cmd InvokeCommand) (domain.InvocationRecord, error) {
	if session == nil || session.User == nil {
		return domain.InvocationRecord{}, ErrNoSession
	}
	name := strings.TrimSpace(cmd.FunctionName)
	if name == "" {
		return domain.InvocationRecord{}, ErrFunctionNameRequired
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		return domain.InvocationRecord{}, ErrInvocationInFlight
	}
	defer h.inFlight.Store(false)

	args, err := parseArguments(cmd.RawArguments)
	if err != nil {
		return domain.InvocationRecord{}, err
	}

	started := h.clock.Now()
	result, err := session.User.CallFunction(ctx, name, args)
	finished := h.clock.Now()
	if err != nil {
		h.logger.Debug("function call failed", zap.String("function", name), zap.Error(err))
		return domain.InvocationRecord{}, err
	}

	elapsed := finished.Sub(started).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}

	record := domain.InvocationRecord{
		FunctionName:  name,
		Arguments:     args,
		Result:        result,
		ElapsedMillis: elapsed,
		InvokedAt:     started,
	}
	h.ledger.Prepend(record)

	h.logger.Debug("function call succeeded", zap.String("function", name), zap.Int64("elapsed_ms", elapsed))
	return record, nil
}

// Ledger returns the recorded calls, newest first.
func (h *Harness) Ledger() []domain.InvocationRecord {
	return h.ledger.Records()
}

// LastError is the outcome of the most recent Invoke, nil after a success.
func (h *Harness) LastError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.lastErr
}

func (h *Harness) Pending() bool {
	return h.inFlight.Load()
}

func parseArguments(raw string) (json.RawMessage, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArgumentParse, err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(raw)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArgumentParse, err)
	}

	return json.RawMessage(compact.Bytes()), nil
}
