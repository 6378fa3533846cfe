// Package tracker is the mutation service: validated create, update and
// delete operations over the record store, each followed by a persistence
// flush and a view refresh. Operations take raw user-entered strings and do
// their own parsing.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/moneytrack-dev/moneytrack/internal/id"
	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/notify"
	"github.com/moneytrack-dev/moneytrack/internal/store"
)

// ErrValidation reports a rejected mutation: a required field was missing,
// empty, or not positive. No partial mutation is ever applied.
var ErrValidation = errors.New("validation failed")

// ConfirmFunc decides whether a destructive operation proceeds. The prompt
// mechanism belongs to the host; a decline makes the operation a no-op.
type ConfirmFunc func(prompt string) bool

// Service applies mutations to the record store.
type Service struct {
	store     *store.Store
	log       *log.Logger
	notifier  notify.Notifier
	refresher Refresher
	confirm   ConfirmFunc
	now       func() time.Time
	nextID    func() int64
}

// Options wires a Service. Zero fields other than Store get working
// defaults; Confirm defaults to approving every prompt.
type Options struct {
	Store     *store.Store
	Logger    *log.Logger
	Notifier  notify.Notifier
	Refresher Refresher
	Confirm   ConfirmFunc
	Now       func() time.Time
	NextID    func() int64
}

// New creates a Service.
func New(opts Options) *Service {
	s := &Service{
		store:     opts.Store,
		log:       opts.Logger,
		notifier:  opts.Notifier,
		refresher: opts.Refresher,
		confirm:   opts.Confirm,
		now:       opts.Now,
		nextID:    opts.NextID,
	}
	if s.log == nil {
		s.log = log.New(log.DefaultConfig())
	}
	s.log = s.log.WithComponent(log.ComponentTracker)
	if s.notifier == nil {
		s.notifier = notify.Discard{}
	}
	if s.refresher == nil {
		s.refresher = NopRefresher{}
	}
	if s.confirm == nil {
		s.confirm = func(string) bool { return true }
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.nextID == nil {
		s.nextID = id.Next
	}
	return s
}

// reject surfaces a validation failure as an error notification and
// returns a wrapped ErrValidation. Nothing has been mutated.
func (s *Service) reject(userMsg, reason string) error {
	s.notifier.Notify(notify.Error, userMsg)
	s.log.Debug("mutation rejected", log.FieldError, reason)
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// persist flushes the store and surfaces failures without retrying.
func (s *Service) persist() error {
	if err := s.store.Save(); err != nil {
		s.notifier.Notify(notify.Error, "Failed to save data")
		s.log.Error("persist failed", log.FieldError, err)
		return err
	}
	return nil
}

func (s *Service) success(msg string, views ...View) {
	s.notifier.Notify(notify.Success, msg)
	s.refresher.Refresh(views...)
}
