package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Config holds snapshot settings
type Config struct {
	Dir      string // directory snapshots are written to
	Schedule string // cron expression
	Keep     int    // snapshots to retain, oldest pruned first
}

// Scheduler periodically snapshots the document file. The flat-file store has
// no journal, so a bad deploy or a truncated write loses everything; daily
// copies are the recovery story.
type Scheduler struct {
	source string
	cfg    Config
	cron   *cron.Cron
	log    *zap.Logger
}

// NewScheduler creates a snapshot scheduler for the given document file
func NewScheduler(source string, cfg Config, log *zap.Logger) *Scheduler {
	return &Scheduler{
		source: source,
		cfg:    cfg,
		cron:   cron.New(),
		log:    log.Named("backup"),
	}
}

// Start registers the cron entry and starts the scheduler
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.Snapshot(); err != nil {
			s.log.Error("Snapshot failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	s.log.Info("Backup scheduler started",
		zap.String("schedule", s.cfg.Schedule),
		zap.String("dir", s.cfg.Dir),
	)
	return nil
}

// Stop stops the scheduler, waiting for a running snapshot to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Snapshot copies the document file into the backup directory and prunes old
// snapshots beyond the retention count. A missing source file is not an
// error; there is simply nothing to back up yet.
func (s *Scheduler) Snapshot() error {
	data, err := os.ReadFile(s.source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("db-%s.json", time.Now().UTC().Format("20060102-150405"))
	dest := filepath.Join(s.cfg.Dir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	s.log.Info("Snapshot written", zap.String("file", dest), zap.Int("bytes", len(data)))

	return s.prune()
}

// prune removes the oldest snapshots beyond the retention count
func (s *Scheduler) prune() error {
	if s.cfg.Keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "db-") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= s.cfg.Keep {
		return nil
	}
	// Timestamped names sort chronologically
	sort.Strings(names)
	for _, name := range names[:len(names)-s.cfg.Keep] {
		if err := os.Remove(filepath.Join(s.cfg.Dir, name)); err != nil {
			return err
		}
		s.log.Debug("Snapshot pruned", zap.String("file", name))
	}
	return nil
}
