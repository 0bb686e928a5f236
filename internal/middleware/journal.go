package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/logger"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/service"
)

// JournalKey is the context key under which WithJournal stores the journal.
const JournalKey ContextKey = "activity_journal"

// JournalConfig tunes the activity journal writer.
type JournalConfig struct {
	// BufferSize bounds the entries waiting to be written. Entries beyond it are dropped.
	BufferSize int
	// BatchSize is the most entries written in one insert.
	BatchSize int
	// FlushInterval is how long a partial batch may wait.
	FlushInterval time.Duration
	// WriteTimeout bounds each insert.
	WriteTimeout time.Duration
}

// DefaultJournalConfig returns the journal settings used when none are configured.
func DefaultJournalConfig() JournalConfig {
	return JournalConfig{
		BufferSize:    1000,
		BatchSize:     50,
		FlushInterval: 2 * time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// JournalStats counts what happened to the entries handed to a journal.
type JournalStats struct {
	Written int64
	Dropped int64
	Failed  int64
}

// Journal writes activity entries in the background. A single worker batches
// entries so request handling never waits on MongoDB.
type Journal struct {
	store        service.ActivityService
	entries      chan *model.LogEntry
	batchSize    int
	flushEvery   time.Duration
	writeTimeout time.Duration

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}

	written atomic.Int64
	dropped atomic.Int64
	failed  atomic.Int64
}

// NewJournal starts a journal writing to store. It returns nil when there is
// no store; a nil journal accepts and discards every entry.
func NewJournal(store service.ActivityService, cfg JournalConfig) *Journal {
	if store == nil {
		return nil
	}
	defaults := DefaultJournalConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaults.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	j := &Journal{
		store:        store,
		entries:      make(chan *model.LogEntry, cfg.BufferSize),
		batchSize:    cfg.BatchSize,
		flushEvery:   cfg.FlushInterval,
		writeTimeout: cfg.WriteTimeout,
		done:         make(chan struct{}),
	}
	go j.run()
	return j
}

// Write queues entry. It reports false when the entry was dropped because the
// buffer is full or the journal is closed.
func (j *Journal) Write(entry *model.LogEntry) bool {
	if j == nil || entry == nil {
		return false
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	j.mu.RLock()
	defer j.mu.RUnlock()
	if !j.closed {
		select {
		case j.entries <- entry:
			return true
		default:
		}
	}
	j.dropped.Add(1)
	metrics.RecordJournalEntries("dropped", 1)
	return false
}

// Close stops accepting entries and waits until the queued ones are written.
func (j *Journal) Close() {
	if j == nil {
		return
	}
	j.closeOnce.Do(func() {
		j.mu.Lock()
		j.closed = true
		close(j.entries)
		j.mu.Unlock()
	})
	<-j.done
}

// Stats returns the journal counters.
func (j *Journal) Stats() JournalStats {
	if j == nil {
		return JournalStats{}
	}
	return JournalStats{
		Written: j.written.Load(),
		Dropped: j.dropped.Load(),
		Failed:  j.failed.Load(),
	}
}

func (j *Journal) run() {
	defer close(j.done)

	ticker := time.NewTicker(j.flushEvery)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, j.batchSize)
	for {
		select {
		case entry, ok := <-j.entries:
			if !ok {
				j.flush(batch)
				return
			}
			batch = append(batch, entry)
			if len(batch) >= j.batchSize {
				j.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				j.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

func (j *Journal) flush(batch []*model.LogEntry) {
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), j.writeTimeout)
	defer cancel()

	// The store may keep the slice; hand it a copy since batch is reused.
	entries := append([]*model.LogEntry(nil), batch...)
	if err := j.store.Record(ctx, entries...); err != nil {
		j.failed.Add(int64(len(entries)))
		metrics.RecordJournalEntries("failed", len(entries))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(entries)).Msg("Failed to write activity entries")
		return
	}
	j.written.Add(int64(len(entries)))
	metrics.RecordJournalEntries("written", len(entries))
}

// WithJournal makes j available to Audit and AuditFailure.
func WithJournal(j *Journal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if j != nil {
			c.Set(string(JournalKey), j)
		}
		c.Next()
	}
}

// GetJournal returns the journal set by WithJournal, or nil.
func GetJournal(c *gin.Context) *Journal {
	if v, exists := c.Get(string(JournalKey)); exists {
		if j, ok := v.(*Journal); ok {
			return j
		}
	}
	return nil
}
