package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"notesgraph/internal/codec"
	"notesgraph/internal/domain"

	"go.uber.org/zap"
)

// ErrNoSource is returned by Reload before any source was loaded
var ErrNoSource = errors.New("no dataset source configured")

// View is the graph view a GraphService drives
type View interface {
	Load(ctx context.Context, source string) error
	Apply(ds *domain.Dataset) error
	Dataset() *domain.Dataset
}

// GraphService tracks where the displayed dataset came from and reloads it
// on request. The view owns the data itself.
type GraphService struct {
	view     View
	eventBus *EventBus
	logger   *zap.Logger

	mu     sync.RWMutex
	source string
}

// NewGraphService creates a new graph service
func NewGraphService(view View, eventBus *EventBus, logger *zap.Logger) *GraphService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphService{
		view:     view,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Source returns the last dataset source loaded successfully
func (s *GraphService) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Load fetches source into the view and remembers it for Reload
func (s *GraphService) Load(ctx context.Context, source string) error {
	if source == "" {
		return ErrNoSource
	}
	if err := s.view.Load(ctx, source); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	s.mu.Lock()
	s.source = source
	s.mu.Unlock()
	return nil
}

// Reload fetches the remembered source again
func (s *GraphService) Reload(ctx context.Context) error {
	source := s.Source()
	if source == "" {
		return ErrNoSource
	}

	s.logger.Info("reloading dataset", zap.String("source", source))
	return s.Load(ctx, source)
}

// SetData replaces the displayed dataset. The source is forgotten so a
// later Reload does not clobber inline data.
func (s *GraphService) SetData(ds *domain.Dataset) error {
	if ds == nil {
		return &domain.ValidationError{Problems: []string{"dataset is required"}}
	}
	if err := s.view.Apply(ds); err != nil {
		return err
	}

	s.mu.Lock()
	s.source = ""
	s.mu.Unlock()
	return nil
}

// Import parses r in the given format and displays it
func (s *GraphService) Import(r io.Reader, format string) (*domain.Stats, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, err
	}
	ds, err := c.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.Format(), err)
	}
	if err := s.SetData(ds); err != nil {
		return nil, err
	}

	stats := domain.DeriveGraph(ds).Stats()
	return &stats, nil
}

// Export writes the displayed dataset in the given format
func (s *GraphService) Export(w io.Writer, format string) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	return c.Export(s.view.Dataset(), w)
}
