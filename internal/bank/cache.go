package bank

import (
	"context"
	"errors"
	"sync"
	"time"

	"codequiz/internal/domain"
	"codequiz/internal/logger"
	"codequiz/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTTL = 5 * time.Minute

	flightForced = "forced"
	flightStale  = "stale"
)

// Options configures a Cache.
type Options struct {
	SheetID       string
	Tab           string
	TTL           time.Duration
	Aliases       AliasTable
	FetchAttempts int
	RetryBackoff  time.Duration
	// Store, when set, mirrors every good snapshot and seeds a cold cache whose
	// first refresh fails.
	Store domain.SnapshotStore
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

// Status describes the cache for diagnostics.
type Status struct {
	SnapshotID    string    `json:"snapshot_id"`
	QuestionCount int       `json:"question_count"`
	FetchedAt     time.Time `json:"fetched_at"`
	FetchCount    int       `json:"fetch_count"`
	FailureCount  int       `json:"failure_count"`
	LastError     string    `json:"last_error,omitempty"`
	LastAttemptAt time.Time `json:"last_attempt_at"`
}

// Cache holds the most recent snapshot of the question sheet and refreshes it
// when it goes stale. At most one fetch runs at a time; concurrent callers that
// need a refresh wait for it and share its result.
type Cache struct {
	source domain.GridSource
	opts   Options

	mu       sync.RWMutex
	snapshot *domain.Snapshot
	status   Status

	fetchMu sync.Mutex
	flights singleflight.Group
}

// NewCache creates a Cache reading from source. Nothing is fetched until the first Load.
func NewCache(source domain.GridSource, opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.FetchAttempts < 1 {
		opts.FetchAttempts = 1
	}
	if opts.Aliases == nil {
		opts.Aliases = DefaultAliases
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache{
		source:   source,
		opts:     opts,
		snapshot: &domain.Snapshot{},
	}
}

// Load returns the held questions, refreshing first when force is set, when
// nothing has been loaded yet, or when the snapshot is older than the TTL.
// If the refresh fails the previous snapshot is kept, and its questions are
// returned together with the error.
func (c *Cache) Load(ctx context.Context, force bool) ([]domain.Question, error) {
	if !force {
		if questions, ok := c.fresh(); ok {
			return questions, nil
		}
	}

	key := flightStale
	if force {
		key = flightForced
	}
	res, err, _ := c.flights.Do(key, func() (interface{}, error) {
		// Waiters share this flight, so one caller giving up must not fail the rest.
		return c.refresh(context.WithoutCancel(ctx), force)
	})
	if err != nil {
		return c.Snapshot().Questions, err
	}
	return res.([]domain.Question), nil
}

// Snapshot returns the snapshot currently held. It must not be modified.
func (c *Cache) Snapshot() *domain.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Status reports the current snapshot and refresh history.
func (c *Cache) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st := c.status
	st.SnapshotID = c.snapshot.ID
	st.QuestionCount = c.snapshot.Len()
	st.FetchedAt = c.snapshot.FetchedAt
	return st
}

// fresh returns the held questions when no refresh is due.
func (c *Cache) fresh() ([]domain.Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	// A zero FetchedAt means nothing was ever loaded; an empty but loaded
	// sheet is a valid state and is kept until it expires.
	if c.snapshot.FetchedAt.IsZero() {
		return nil, false
	}
	if c.opts.Now().Sub(c.snapshot.FetchedAt) >= c.opts.TTL {
		return nil, false
	}
	return c.snapshot.Questions, true
}

func (c *Cache) refresh(ctx context.Context, force bool) ([]domain.Question, error) {
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	// A refresh may have completed while this caller waited for fetchMu.
	if !force {
		if questions, ok := c.fresh(); ok {
			return questions, nil
		}
	}

	started := c.opts.Now()
	grid, err := c.fetchWithRetry(ctx)
	if err != nil {
		c.recordFailure(started, err)
		c.seedFromStore(ctx)
		return nil, err
	}

	questions, hm := BuildQuestions(grid, c.opts.Aliases)
	if headerDrifted(grid, hm) {
		if held := c.Snapshot(); held.Len() > 0 {
			err := domain.NewSourceUnavailableError("Question sheet header row has no code or output column", nil)
			logger.Get().Warn("Ignoring question sheet with unrecognised headers",
				zap.Strings("header", grid[0]),
				zap.String("held_snapshot_id", held.ID),
			)
			c.recordFailure(started, err)
			return nil, err
		}
	}
	if hm.Resolved() == 0 || len(questions) == 0 {
		logger.Get().Warn("Question sheet produced an empty bank",
			zap.String("sheet_id", c.opts.SheetID),
			zap.String("tab", c.opts.Tab),
			zap.Int("rows", len(grid)),
			zap.Int("resolved_columns", hm.Resolved()),
		)
	}

	fetchedAt := c.opts.Now()
	snapshot := &domain.Snapshot{
		ID:        util.NewULID(fetchedAt),
		Questions: questions,
		FetchedAt: fetchedAt,
	}

	c.mu.Lock()
	c.snapshot = snapshot
	c.status.FetchCount++
	c.status.LastError = ""
	c.status.LastAttemptAt = started
	c.mu.Unlock()

	logger.Get().Info("Question bank refreshed",
		zap.String("snapshot_id", snapshot.ID),
		zap.Int("questions", len(questions)),
		zap.Bool("forced", force),
		zap.Duration("took", fetchedAt.Sub(started)),
	)

	if c.opts.Store != nil {
		if err := c.opts.Store.SaveSnapshot(ctx, c.opts.SheetID, c.opts.Tab, snapshot); err != nil {
			logger.Get().Warn("Failed to mirror question bank snapshot", zap.Error(err))
		}
	}
	return questions, nil
}

func (c *Cache) fetchWithRetry(ctx context.Context) ([][]string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.opts.FetchAttempts; attempt++ {
		grid, err := c.source.FetchGrid(ctx, c.opts.SheetID, c.opts.Tab)
		if err == nil {
			return grid, nil
		}
		lastErr = asSourceError(err)
		if domain.IsCode(lastErr, domain.CodeConfigurationMissing) || attempt == c.opts.FetchAttempts {
			break
		}

		logger.Get().Warn("Question sheet fetch failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.opts.FetchAttempts),
			zap.Error(err),
		)
		time.Sleep(c.opts.RetryBackoff)
	}
	return nil, lastErr
}

func (c *Cache) recordFailure(at time.Time, err error) {
	c.mu.Lock()
	c.status.FailureCount++
	c.status.LastError = err.Error()
	c.status.LastAttemptAt = at
	held := c.snapshot.Len()
	c.mu.Unlock()

	logger.Get().Error("Question bank refresh failed, keeping previous snapshot",
		zap.Error(err),
		zap.Int("held_questions", held),
	)
}

// seedFromStore fills a never-loaded cache from the mirrored snapshot.
func (c *Cache) seedFromStore(ctx context.Context) {
	if c.opts.Store == nil {
		return
	}
	c.mu.RLock()
	loaded := !c.snapshot.FetchedAt.IsZero()
	c.mu.RUnlock()
	if loaded {
		return
	}

	mirrored, err := c.opts.Store.LoadSnapshot(ctx, c.opts.SheetID, c.opts.Tab)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read mirrored question bank snapshot", zap.Error(err))
		}
		return
	}

	c.mu.Lock()
	if c.snapshot.FetchedAt.IsZero() {
		c.snapshot = mirrored
	}
	c.mu.Unlock()

	logger.Get().Info("Question bank seeded from mirrored snapshot",
		zap.String("snapshot_id", mirrored.ID),
		zap.Int("questions", mirrored.Len()),
		zap.Time("fetched_at", mirrored.FetchedAt),
	)
}

// headerDrifted reports a sheet that has a header row but no column that
// could hold question content. A sheet with no rows at all is just empty.
func headerDrifted(grid [][]string, hm domain.HeaderMap) bool {
	return len(grid) > 0 && hm.Column(domain.FieldCode) < 0 && hm.Column(domain.FieldOutput) < 0
}

func asSourceError(err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewSourceUnavailableError("Failed to fetch question sheet", err)
}
