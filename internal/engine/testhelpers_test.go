package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bamsammich/fecode/internal/codec"
	"github.com/bamsammich/fecode/internal/event"
)

// writeFile creates path (and its parents) with data.
func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// patterned returns n bytes cycling through every byte value.
func patterned(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}

// encoded returns the encoded form of data without touching data.
func encoded(data []byte) []byte {
	out := bytes.Clone(data)
	codec.Encode(out)
	return out
}

// collectEvents returns a buffered channel and a function that closes it and
// returns everything received.
func collectEvents(t *testing.T) (chan event.Event, func() []event.Event) {
	t.Helper()
	ch := make(chan event.Event, 1024)
	return ch, func() []event.Event {
		close(ch)
		var evs []event.Event
		for ev := range ch {
			evs = append(evs, ev)
		}
		return evs
	}
}

func eventTypes(evs []event.Event) []event.Type {
	types := make([]event.Type, len(evs))
	for i, ev := range evs {
		types[i] = ev.Type
	}
	return types
}
