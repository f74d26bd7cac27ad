package marketing

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"agency-backend/internal/catalog"
)

var (
	ErrInvalidType = errors.New("invalid type")
	ErrNoItems     = errors.New("no items found")
	ErrNotFound    = errors.New("item not found")
)

// Source supplies the read-only catalog collections.
type Source interface {
	Services(ctx context.Context) ([]catalog.Service, error)
	SpecializedServices(ctx context.Context) ([]catalog.SpecializedService, error)
	Projects(ctx context.Context) ([]catalog.Project, error)
}

type Service struct {
	source Source
	// intN returns a uniform integer in [0, n).
	intN func(n int) int
}

func NewService(source Source) *Service {
	return &Service{
		source: source,
		intN:   rand.IntN,
	}
}

// List maps every record of the requested kind to its public shape.
func (s *Service) List(ctx context.Context, kind Kind) ([]Item, error) {
	switch kind {
	case KindService:
		records, err := s.source.Services(ctx)
		if err != nil {
			return nil, fmt.Errorf("list services: %w", err)
		}
		items := make([]Item, 0, len(records))
		for _, record := range records {
			items = append(items, TransformService(record))
		}
		return items, nil
	case KindSpecialized:
		records, err := s.source.SpecializedServices(ctx)
		if err != nil {
			return nil, fmt.Errorf("list specialized services: %w", err)
		}
		items := make([]Item, 0, len(records))
		for _, record := range records {
			items = append(items, TransformSpecializedService(record))
		}
		return items, nil
	case KindProject:
		records, err := s.source.Projects(ctx)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		items := make([]Item, 0, len(records))
		for _, record := range records {
			items = append(items, TransformProject(record))
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, string(kind))
	}
}

// Random returns one item of the requested kind, each with equal probability.
func (s *Service) Random(ctx context.Context, kind Kind) (Item, error) {
	items, err := s.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoItems, kind)
	}
	return items[s.intN(len(items))], nil
}

func (s *Service) Project(ctx context.Context, id string) (ProjectItem, error) {
	id = strings.TrimSpace(id)
	records, err := s.source.Projects(ctx)
	if err != nil {
		return ProjectItem{}, fmt.Errorf("list projects: %w", err)
	}
	for _, record := range records {
		if record.ID == id {
			return TransformProject(record), nil
		}
	}
	return ProjectItem{}, ErrNotFound
}
