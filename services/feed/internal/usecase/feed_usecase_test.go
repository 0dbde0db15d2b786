package usecase

import (
	"context"
	"testing"

	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPage_HasMoreHeuristic(t *testing.T) {
	repo := newFakeFeedRepo()
	uc := NewFeedUseCase(repo)
	ctx := context.Background()

	page, err := uc.GetPage(ctx, entity.Filters{}, "")
	require.NoError(t, err)
	assert.Len(t, page.Nodes, entity.PageSize)
	assert.True(t, page.HasMore)
	require.NotEmpty(t, page.NextCursor)

	page, err = uc.GetPage(ctx, entity.Filters{}, page.NextCursor)
	require.NoError(t, err)
	assert.Len(t, page.Nodes, entity.PageSize)
	assert.True(t, page.HasMore)

	// 130 items total: the last page is short, which ends the stream.
	page, err = uc.GetPage(ctx, entity.Filters{}, page.NextCursor)
	require.NoError(t, err)
	assert.Len(t, page.Nodes, 10)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestGetPage_TagsPremiumSlots(t *testing.T) {
	repo := newFakeFeedRepo()
	uc := NewFeedUseCase(repo)

	page, err := uc.GetPage(context.Background(), entity.Filters{}, "")
	require.NoError(t, err)
	assert.Equal(t, entity.NodePremium, page.Nodes[10].Type)
	assert.Equal(t, entity.NodeListing, page.Nodes[11].Type)
	assert.Equal(t, entity.NodePremium, page.Nodes[25].Type)
}

func TestGetPage_RejectsBadCursor(t *testing.T) {
	uc := NewFeedUseCase(newFakeFeedRepo())

	_, err := uc.GetPage(context.Background(), entity.Filters{}, "!!not a cursor!!")
	assert.Error(t, err)
}

func TestQuickFilters_ExposesAllSix(t *testing.T) {
	uc := NewFeedUseCase(newFakeFeedRepo())

	filters := uc.QuickFilters()
	require.Len(t, filters, 6)
	assert.Equal(t, entity.QuickBargains, filters[0].Key)
	assert.Equal(t, "Within 30 Miles", filters[5].Label)
}
