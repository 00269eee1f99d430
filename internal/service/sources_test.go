package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/service/mocks"
)

type SourceRegistryTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sources   *mocks.MockSourceStore
	txManager *mocks.MockTransactionManager

	registry *SourceRegistry
}

func (s *SourceRegistryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.registry = NewSourceRegistry(s.sources, s.txManager, logger)
}

func (s *SourceRegistryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSourceRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(SourceRegistryTestSuite))
}

func (s *SourceRegistryTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *SourceRegistryTestSuite) TestAdd_NormalizesChannelURL() {
	ctx := context.Background()
	normalized := "https://www.youtube.com/@SomeCreator"

	s.expectTransaction(ctx)
	s.sources.EXPECT().GetByURL(ctx, normalized).Return(nil, domain.ErrNotFound)
	s.sources.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, src *domain.Source) (int64, error) {
			s.Equal(normalized, src.URL)
			s.Equal(domain.KindChannel, src.Kind)
			s.True(src.Active)
			s.Equal(24, src.SyncIntervalHours)
			s.Require().NotNil(src.Name)
			s.Equal("SomeCreator", *src.Name)
			return 42, nil
		})
	s.sources.EXPECT().GetByID(ctx, int64(42)).
		Return(&domain.Source{ID: 42, URL: normalized, Kind: domain.KindChannel}, nil)

	src, err := s.registry.Add(ctx, "youtube.com/@SomeCreator", "", 24)

	s.NoError(err)
	s.Equal(int64(42), src.ID)
}

func (s *SourceRegistryTestSuite) TestAdd_PlaylistFromWatchURL() {
	ctx := context.Background()
	normalized := "https://www.youtube.com/playlist?list=PLabc123DEF"

	s.expectTransaction(ctx)
	s.sources.EXPECT().GetByURL(ctx, normalized).Return(nil, domain.ErrNotFound)
	s.sources.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, src *domain.Source) (int64, error) {
			s.Equal(domain.KindPlaylist, src.Kind)
			s.Equal(normalized, src.URL)
			return 43, nil
		})
	s.sources.EXPECT().GetByID(ctx, int64(43)).
		Return(&domain.Source{ID: 43, Kind: domain.KindPlaylist}, nil)

	src, err := s.registry.Add(ctx,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123DEF", "My List", 12)

	s.NoError(err)
	s.Equal(domain.KindPlaylist, src.Kind)
}

func (s *SourceRegistryTestSuite) TestAdd_RejectsInvalidURL() {
	_, err := s.registry.Add(context.Background(), "https://example.com/not-youtube", "", 24)

	s.Error(err)
	s.Contains(err.Error(), "invalid source URL")
}

func (s *SourceRegistryTestSuite) TestAdd_RejectsIntervalOutOfRange() {
	_, err := s.registry.Add(context.Background(), "https://www.youtube.com/@creator", "", 0)
	s.Error(err)

	_, err = s.registry.Add(context.Background(), "https://www.youtube.com/@creator", "", 200)
	s.Error(err)
}

func (s *SourceRegistryTestSuite) TestAdd_DuplicateURL() {
	ctx := context.Background()
	normalized := "https://www.youtube.com/@SomeCreator"

	s.expectTransaction(ctx)
	s.sources.EXPECT().GetByURL(ctx, normalized).
		Return(&domain.Source{ID: 1, URL: normalized}, nil)

	_, err := s.registry.Add(ctx, "https://www.youtube.com/@SomeCreator", "", 24)

	s.ErrorIs(err, domain.ErrSourceExists)
}

func (s *SourceRegistryTestSuite) TestRemove() {
	ctx := context.Background()

	s.sources.EXPECT().Deactivate(ctx, int64(7)).Return(nil)

	s.NoError(s.registry.Remove(ctx, 7))
}

func (s *SourceRegistryTestSuite) TestRemove_NotFound() {
	ctx := context.Background()

	s.sources.EXPECT().Deactivate(ctx, int64(7)).Return(domain.ErrNotFound)

	err := s.registry.Remove(ctx, 7)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *SourceRegistryTestSuite) TestSetInterval_Validates() {
	ctx := context.Background()

	s.Error(s.registry.SetInterval(ctx, 7, 0))
	s.Error(s.registry.SetInterval(ctx, 7, 169))

	s.sources.EXPECT().SetSyncInterval(ctx, int64(7), 48).Return(nil)
	s.NoError(s.registry.SetInterval(ctx, 7, 48))
}
