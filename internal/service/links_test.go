package service

import (
	"context"
	"testing"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/mocks"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newLinkService(t *testing.T) (*LinkService, *mocks.MockLinkRepositoryInterface, *mocks.MockClickRepositoryInterface) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkRepositoryInterface(ctrl)
	clicks := mocks.NewMockClickRepositoryInterface(ctrl)
	logger, _ := zap.NewDevelopment()
	return NewLinkService(links, clicks, logger), links, clicks
}

func TestLinkCreate(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	links.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, link *model.Link) error {
			assert.NotEmpty(t, link.ID)
			assert.Equal(t, "user-1", link.UserID)
			assert.True(t, link.IsActive)
			return nil
		})

	link, err := svc.Create(ctx, "user-1", &model.LinkRequest{Title: "GitHub", URL: "https://github.com/alice"})
	require.NoError(t, err)
	assert.Equal(t, "GitHub", link.Title)
	assert.True(t, link.IsActive)
}

func TestLinkCreate_InactiveRequested(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	inactive := false
	links.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	link, err := svc.Create(ctx, "user-1", &model.LinkRequest{Title: "Draft", URL: "https://example.com", IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, link.IsActive)
}

func TestLinkUpdate_ForeignLink(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	// Ссылка существует, но принадлежит другому пользователю
	links.EXPECT().GetByID(ctx, "l1").Return(&model.Link{ID: "l1", UserID: "someone-else"}, nil)

	_, err := svc.Update(ctx, "user-1", "l1", &model.LinkRequest{Title: "x", URL: "https://x.com"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLinkUpdate_Missing(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	links.EXPECT().GetByID(ctx, "gone").Return(nil, nil)

	_, err := svc.Update(ctx, "user-1", "gone", &model.LinkRequest{Title: "x", URL: "https://x.com"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLinkUpdate(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	existing := &model.Link{ID: "l1", UserID: "user-1", Title: "Old", URL: "https://old.com", Clicks: 7}
	links.EXPECT().GetByID(ctx, "l1").Return(existing, nil)
	links.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	link, err := svc.Update(ctx, "user-1", "l1", &model.LinkRequest{Title: "New", URL: "https://new.com"})
	require.NoError(t, err)
	assert.Equal(t, "New", link.Title)
	assert.Equal(t, "https://new.com", link.URL)
	// Счётчик кликов правками не сбрасывается
	assert.Equal(t, int64(7), link.Clicks)
}

func TestLinkDelete_Missing(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	links.EXPECT().Delete(ctx, "gone", "user-1").Return(pgx.ErrNoRows)

	err := svc.Delete(ctx, "user-1", "gone")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLinkReorder(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	ids := []string{"l3", "l1", "l2"}
	links.EXPECT().Reorder(ctx, "user-1", ids).Return(nil)

	assert.NoError(t, svc.Reorder(ctx, "user-1", ids))
}

func TestLinkStats(t *testing.T) {
	svc, links, clicks := newLinkService(t)
	ctx := context.Background()

	links.EXPECT().GetByID(ctx, "l1").Return(&model.Link{ID: "l1", UserID: "user-1"}, nil)
	clicks.EXPECT().Stats(ctx, "l1", 30).Return(&model.LinkStats{
		TotalClicks: 12,
		ByDevice:    map[string]int64{model.DeviceMobile: 8, model.DeviceDesktop: 4},
	}, nil)

	stats, err := svc.Stats(ctx, "user-1", "l1", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalClicks)
}

func TestLinkStats_ForeignLink(t *testing.T) {
	svc, links, _ := newLinkService(t)
	ctx := context.Background()

	links.EXPECT().GetByID(ctx, "l1").Return(&model.Link{ID: "l1", UserID: "someone-else"}, nil)

	_, err := svc.Stats(ctx, "user-1", "l1", 30)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
