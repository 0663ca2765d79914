package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoResolvesWithProducerResult(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	got, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestGoPropagatesProducerError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	f := Go(context.Background(), func(context.Context) (int, error) {
		return 0, wantErr
	})

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestGoRecoversPanics(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(context.Context) (int, error) {
		panic("kaboom")
	})

	_, err := f.Await(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestAwaitStopsWhenContextIsDone(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	f := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolvedIsImmediatelyDone(t *testing.T) {
	t.Parallel()

	f := Resolved("value", nil)
	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future must be done")
	}

	got, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}
