package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Save(t *testing.T) {
	var copied string
	sink := &Sink{write: func(s string) error {
		copied = s
		return nil
	}}

	loc, err := sink.Save(context.Background(), "document.txt", "Hi **there**", "text/plain")

	require.NoError(t, err)
	assert.Equal(t, "clipboard", loc)
	assert.Equal(t, "Hi **there**", copied)
}

func TestSink_SaveError(t *testing.T) {
	sink := &Sink{write: func(string) error { return errors.New("no xclip") }}

	_, err := sink.Save(context.Background(), "document.txt", "x", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying to clipboard")
}

func TestSink_CancelledContext(t *testing.T) {
	called := false
	sink := &Sink{write: func(string) error {
		called = true
		return nil
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sink.Save(ctx, "document.txt", "x", "")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestNewSink(t *testing.T) {
	assert.NotNil(t, NewSink().write)
}
