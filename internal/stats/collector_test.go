package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()
	const goroutines = 50
	const opsPerGoroutine = 1000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range opsPerGoroutine {
				c.AddFilesScanned(1)
				c.AddFilesProcessed(1)
				c.AddFilesFailed(1)
				c.AddFilesSkipped(1)
				c.AddBytesProcessed(64)
				c.AddFilesVerified(1)
			}
		}()
	}
	wg.Wait()

	s := c.Snapshot()
	expected := int64(goroutines * opsPerGoroutine)
	assert.Equal(t, expected, s.FilesScanned)
	assert.Equal(t, expected, s.FilesProcessed)
	assert.Equal(t, expected, s.FilesFailed)
	assert.Equal(t, expected, s.FilesSkipped)
	assert.Equal(t, expected*64, s.BytesProcessed)
	assert.Equal(t, expected, s.FilesVerified)
}

func TestSnapshotString(t *testing.T) {
	s := Snapshot{
		FilesScanned:   4,
		FilesProcessed: 3,
		FilesFailed:    1,
		BytesProcessed: 4096,
		FilesVerified:  3,
	}
	assert.Equal(t, "scanned=4 processed=3 failed=1 skipped=0 bytes=4096 verified=3", s.String())
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{65536, "64.0 KiB"},
		{1048576, "1.0 MiB"},
		{1073741824, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatBytes(tt.input))
		})
	}
}

func TestSetTotals(t *testing.T) {
	c := NewCollector()
	c.SetTotals(3, 1<<20)
	s := c.Snapshot()
	assert.Equal(t, int64(3), s.FilesTotal)
	assert.Equal(t, int64(1<<20), s.BytesTotal)
}

func TestTickAndRollingSpeed(t *testing.T) {
	c := NewCollector()
	for range 5 {
		c.AddBytesProcessed(1000)
		c.Tick()
	}
	assert.InDelta(t, 1000.0, c.RollingSpeed(5), 0.01)
	// Window larger than the samples collected.
	assert.InDelta(t, 1000.0, c.RollingSpeed(30), 0.01)
}

func TestRollingSpeedNoSamples(t *testing.T) {
	c := NewCollector()
	assert.Zero(t, c.RollingSpeed(5))
}

func TestRingWraparound(t *testing.T) {
	c := NewCollector()
	for range ringSize + 10 {
		c.AddBytesProcessed(10)
		c.Tick()
	}
	assert.InDelta(t, 10.0, c.RollingSpeed(ringSize), 0.01)
}

func TestSnapshotIncludesElapsed(t *testing.T) {
	c := NewCollector()
	time.Sleep(10 * time.Millisecond)
	assert.Greater(t, c.Snapshot().Elapsed, time.Duration(0))
}
