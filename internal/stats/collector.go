package stats

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const ringSize = 60

// Writer is the side of the collector the engine updates.
type Writer interface {
	AddFilesScanned(n int64)
	AddFilesProcessed(n int64)
	AddFilesFailed(n int64)
	AddFilesSkipped(n int64)
	AddBytesProcessed(n int64)
	AddFilesVerified(n int64)
	AddFilesVerifyFailed(n int64)
	SetTotals(files, bytes int64)
}

// Reader is the side of the collector presenters read.
type Reader interface {
	Snapshot() Snapshot
	RollingSpeed(seconds int) float64
}

// ReadTicker is a Reader that the presenter also drives once per second.
type ReadTicker interface {
	Reader
	Tick()
}

// Collector tracks transform statistics using atomic counters.
type Collector struct {
	filesScanned      atomic.Int64
	filesProcessed    atomic.Int64
	filesFailed       atomic.Int64
	filesSkipped      atomic.Int64
	bytesProcessed    atomic.Int64
	filesVerified     atomic.Int64
	filesVerifyFailed atomic.Int64
	filesTotal        atomic.Int64
	bytesTotal        atomic.Int64
	startTime         time.Time

	// Written only by Tick.
	mu         sync.Mutex
	throughput [ringSize]int64 // bytes delta per tick
	ringIdx    int
	ringCount  int
	lastBytes  int64
}

var (
	_ Writer     = (*Collector)(nil)
	_ ReadTicker = (*Collector)(nil)
)

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// SetTotals records scan totals.
func (c *Collector) SetTotals(files, bytes int64) {
	c.filesTotal.Store(files)
	c.bytesTotal.Store(bytes)
}

func (c *Collector) AddFilesScanned(n int64)      { c.filesScanned.Add(n) }
func (c *Collector) AddFilesProcessed(n int64)    { c.filesProcessed.Add(n) }
func (c *Collector) AddFilesFailed(n int64)       { c.filesFailed.Add(n) }
func (c *Collector) AddFilesSkipped(n int64)      { c.filesSkipped.Add(n) }
func (c *Collector) AddBytesProcessed(n int64)    { c.bytesProcessed.Add(n) }
func (c *Collector) AddFilesVerified(n int64)     { c.filesVerified.Add(n) }
func (c *Collector) AddFilesVerifyFailed(n int64) { c.filesVerifyFailed.Add(n) }

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	FilesScanned      int64
	FilesProcessed    int64
	FilesFailed       int64
	FilesSkipped      int64
	BytesProcessed    int64
	FilesVerified     int64
	FilesVerifyFailed int64
	FilesTotal        int64
	BytesTotal        int64
	Elapsed           time.Duration
}

// Snapshot returns a point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		FilesScanned:      c.filesScanned.Load(),
		FilesProcessed:    c.filesProcessed.Load(),
		FilesFailed:       c.filesFailed.Load(),
		FilesSkipped:      c.filesSkipped.Load(),
		BytesProcessed:    c.bytesProcessed.Load(),
		FilesVerified:     c.filesVerified.Load(),
		FilesVerifyFailed: c.filesVerifyFailed.Load(),
		FilesTotal:        c.filesTotal.Load(),
		BytesTotal:        c.bytesTotal.Load(),
		Elapsed:           c.Elapsed(),
	}
}

// Tick records the bytes processed since the previous tick.
func (c *Collector) Tick() {
	current := c.bytesProcessed.Load()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.throughput[c.ringIdx] = current - c.lastBytes
	c.lastBytes = current
	c.ringIdx = (c.ringIdx + 1) % ringSize
	if c.ringCount < ringSize {
		c.ringCount++
	}
}

// RollingSpeed returns average bytes per tick over the last n ticks.
func (c *Collector) RollingSpeed(seconds int) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := min(seconds, c.ringCount)
	if count <= 0 {
		return 0
	}
	var sum int64
	for i := range count {
		sum += c.throughput[(c.ringIdx-1-i+ringSize)%ringSize]
	}
	return float64(sum) / float64(count)
}

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"scanned=%d processed=%d failed=%d skipped=%d bytes=%d verified=%d",
		s.FilesScanned, s.FilesProcessed, s.FilesFailed, s.FilesSkipped,
		s.BytesProcessed, s.FilesVerified,
	)
}

// FormatBytes returns a human-readable byte count.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
