package usecase

import (
	"context"

	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/feed/internal/repo/persistent"
)

type FeedUseCase interface {
	// GetPage returns one tagged feed page, continuing after the opaque
	// cursor when one is given.
	GetPage(ctx context.Context, filters entity.Filters, cursor string) (*entity.Page, error)
	QuickFilters() []entity.QuickFilter
}

type feedUseCase struct {
	feedRepo persistent.FeedRepository
}

func NewFeedUseCase(feedRepo persistent.FeedRepository) FeedUseCase {
	return &feedUseCase{feedRepo: feedRepo}
}

func (uc *feedUseCase) GetPage(ctx context.Context, filters entity.Filters, cursor string) (*entity.Page, error) {
	from, err := persistent.DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}

	items, next, err := uc.feedRepo.ListPage(filters, from, entity.PageSize)
	if err != nil {
		return nil, err
	}

	// A short page means the stream is exhausted. An exactly full final
	// page costs one extra empty request; that matches the storefront.
	page := &entity.Page{
		Nodes:   Interleave(items),
		HasMore: len(items) == entity.PageSize,
	}
	if page.HasMore {
		page.NextCursor = persistent.EncodeCursor(next)
	}
	return page, nil
}

func (uc *feedUseCase) QuickFilters() []entity.QuickFilter {
	return entity.QuickFilters
}
