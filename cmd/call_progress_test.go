package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallProgressShowsRunningTimer(t *testing.T) {
	started := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	current := started
	model := newCallProgressModel("foo", func() time.Time { return current }, nil)

	assert.Contains(t, model.View(), "calling foo")
	assert.Contains(t, model.View(), "0ms")

	current = started.Add(1250 * time.Millisecond)
	updated, _ := model.Update(spinner.TickMsg{})
	model = updated.(callProgressModel)

	assert.Equal(t, 1250*time.Millisecond, model.elapsed)
	assert.Contains(t, model.View(), "1250ms")
}

func TestCallProgressKeepsFinishedRecord(t *testing.T) {
	now := func() time.Time { return time.Unix(0, 0) }
	record := domain.InvocationRecord{
		FunctionName:  "foo",
		Arguments:     json.RawMessage(`[1,2,3]`),
		Result:        json.RawMessage(`[1,2,3]`),
		ElapsedMillis: 12,
	}

	updated, cmd := newCallProgressModel("foo", now, nil).Update(callFinishedMsg{record: record})
	model := updated.(callProgressModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.finished)
	assert.Equal(t, record, model.record)
	assert.NoError(t, model.err)
	assert.Empty(t, model.View())
}

func TestRunCallProgressReturnsInvocationOutcome(t *testing.T) {
	want := domain.InvocationRecord{FunctionName: "echo", Result: json.RawMessage(`"ping"`)}

	record, err := runCallProgress(context.Background(), &bytes.Buffer{}, "echo", func(context.Context) (domain.InvocationRecord, error) {
		return want, nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, record)

	failure := errors.New("function not found: 'echo'")
	record, err = runCallProgress(context.Background(), &bytes.Buffer{}, "echo", func(context.Context) (domain.InvocationRecord, error) {
		return domain.InvocationRecord{}, failure
	})
	require.ErrorIs(t, err, failure)
	assert.Empty(t, record.FunctionName)
}
