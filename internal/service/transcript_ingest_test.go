package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"youtube_ingest/internal/config"
	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/extractor"
	"youtube_ingest/internal/service/mocks"
	"youtube_ingest/internal/youtube"
	"youtube_ingest/testdata/utils"
)

type TranscriptIngestionTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	gateway   *mocks.MockGateway
	videos    *mocks.MockVideoStore
	logs      *mocks.MockIngestionLogStore
	publisher *mocks.MockPublisher

	manager *TranscriptIngestion
	logger  *slog.Logger
}

func (s *TranscriptIngestionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.gateway = mocks.NewMockGateway(s.ctrl)
	s.videos = mocks.NewMockVideoStore(s.ctrl)
	s.logs = mocks.NewMockIngestionLogStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := config.TranscriptConfig{
		BatchSize:        2,
		Concurrency:      2,
		MinLength:        20,
		MinSegments:      2,
		QualityThreshold: 0.7,
		Languages:        []string{"en"},
	}
	s.manager = NewTranscriptIngestion(s.gateway, s.videos, s.logs, s.publisher, cfg, s.logger)
}

func (s *TranscriptIngestionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTranscriptIngestionTestSuite(t *testing.T) {
	suite.Run(t, new(TranscriptIngestionTestSuite))
}

func goodTranscript() *extractor.RawTranscript {
	return &extractor.RawTranscript{
		Transcript: []extractor.RawSegment{
			{Start: "0", Dur: "2.5", Text: "welcome back to the channel"},
			{Start: "2.5", Dur: "3.1", Text: "today we are talking about ingestion"},
			{Start: "5.6", Dur: "2.0", Text: "let us get started"},
		},
		Language: "en",
	}
}

func (s *TranscriptIngestionTestSuite) expectSuccess(videoID string) {
	s.videos.EXPECT().TranscriptStatus(gomock.Any(), videoID).Return(domain.TranscriptMissing, nil)
	s.gateway.EXPECT().FetchTranscript(gomock.Any(), youtube.WatchURL(videoID)).
		Return(goodTranscript(), extractor.RunInfo{}, nil)
	s.videos.EXPECT().UpsertTranscript(gomock.Any(), videoID, gomock.Any(), gomock.Any()).Return(nil)
	s.videos.EXPECT().GetByVideoID(gomock.Any(), videoID).
		Return(&domain.Video{VideoID: videoID, TranscriptText: utils.Ptr("welcome back")}, nil)
	s.publisher.EXPECT().PublishVideo(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_Succeeded() {
	ctx := context.Background()
	s.expectSuccess("dQw4w9WgXcQ")

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultSucceeded, result.Status)
	s.Equal("en", result.Language)
	s.Equal(3, result.SegmentCount)
	s.True(result.Published)
	s.False(result.PublishFailed)
	s.False(result.LowQuality)
	s.InDelta(1.0, result.QualityScore, 0.01)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_SkipsAlreadyIngested() {
	ctx := context.Background()

	s.videos.EXPECT().TranscriptStatus(ctx, "dQw4w9WgXcQ").Return(domain.TranscriptIngested, nil)

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultSkipped, result.Status)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_SkipsUnavailable() {
	ctx := context.Background()

	s.videos.EXPECT().TranscriptStatus(ctx, "dQw4w9WgXcQ").Return(domain.TranscriptUnavailable, nil)

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultSkipped, result.Status)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_ForceReprocesses() {
	ctx := context.Background()

	s.videos.EXPECT().TranscriptStatus(gomock.Any(), "dQw4w9WgXcQ").Return(domain.TranscriptIngested, nil)
	s.gateway.EXPECT().FetchTranscript(gomock.Any(), youtube.WatchURL("dQw4w9WgXcQ")).
		Return(goodTranscript(), extractor.RunInfo{}, nil)
	s.videos.EXPECT().UpsertTranscript(gomock.Any(), "dQw4w9WgXcQ", gomock.Any(), gomock.Any()).Return(nil)
	s.videos.EXPECT().GetByVideoID(gomock.Any(), "dQw4w9WgXcQ").
		Return(&domain.Video{VideoID: "dQw4w9WgXcQ"}, nil)
	s.publisher.EXPECT().PublishVideo(gomock.Any(), gomock.Any()).Return(nil)

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", true)

	s.Equal(domain.TranscriptResultSucceeded, result.Status)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_Unavailable() {
	ctx := context.Background()

	s.videos.EXPECT().TranscriptStatus(ctx, "dQw4w9WgXcQ").Return(domain.TranscriptMissing, nil)
	s.gateway.EXPECT().FetchTranscript(ctx, youtube.WatchURL("dQw4w9WgXcQ")).
		Return(nil, extractor.RunInfo{}, extractor.ErrTranscriptUnavailable)
	s.videos.EXPECT().MarkTranscriptUnavailable(ctx, "dQw4w9WgXcQ", gomock.Any()).Return(nil)

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultUnavailable, result.Status)
	s.False(result.Published)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_FetchFailure() {
	ctx := context.Background()

	s.videos.EXPECT().TranscriptStatus(ctx, "dQw4w9WgXcQ").Return(domain.TranscriptMissing, nil)
	s.gateway.EXPECT().FetchTranscript(ctx, youtube.WatchURL("dQw4w9WgXcQ")).
		Return(nil, extractor.RunInfo{}, errors.New("run did not succeed: FAILED"))

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultFailed, result.Status)
	s.Contains(result.Error, "fetch transcript")
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_EmptySegmentsMarkedUnavailable() {
	ctx := context.Background()

	// The actor answered, but every segment cleans down to nothing.
	raw := &extractor.RawTranscript{
		Transcript: []extractor.RawSegment{
			{Start: "0", Dur: "1", Text: "[Music]"},
			{Start: "1", Dur: "1", Text: "   "},
		},
	}

	s.videos.EXPECT().TranscriptStatus(ctx, "dQw4w9WgXcQ").Return(domain.TranscriptMissing, nil)
	s.gateway.EXPECT().FetchTranscript(ctx, youtube.WatchURL("dQw4w9WgXcQ")).
		Return(raw, extractor.RunInfo{}, nil)
	s.videos.EXPECT().MarkTranscriptUnavailable(ctx, "dQw4w9WgXcQ", gomock.Any()).Return(nil)

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultUnavailable, result.Status)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_PublishFailureNotEscalated() {
	ctx := context.Background()

	s.videos.EXPECT().TranscriptStatus(ctx, "dQw4w9WgXcQ").Return(domain.TranscriptMissing, nil)
	s.gateway.EXPECT().FetchTranscript(ctx, youtube.WatchURL("dQw4w9WgXcQ")).
		Return(goodTranscript(), extractor.RunInfo{}, nil)
	s.videos.EXPECT().UpsertTranscript(ctx, "dQw4w9WgXcQ", gomock.Any(), gomock.Any()).Return(nil)
	s.videos.EXPECT().GetByVideoID(ctx, "dQw4w9WgXcQ").
		Return(&domain.Video{VideoID: "dQw4w9WgXcQ"}, nil)
	s.publisher.EXPECT().PublishVideo(ctx, gomock.Any()).Return(errors.New("broker unreachable"))

	result := s.manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultSucceeded, result.Status)
	s.False(result.Published)
	s.True(result.PublishFailed)
	s.Empty(result.Error)
}

func (s *TranscriptIngestionTestSuite) TestIngestOne_LowQualityStoredAndPublished() {
	ctx := context.Background()

	cfg := config.TranscriptConfig{
		BatchSize:        2,
		Concurrency:      2,
		MinLength:        500,
		MinSegments:      50,
		QualityThreshold: 0.7,
		Languages:        []string{"en"},
	}
	manager := NewTranscriptIngestion(s.gateway, s.videos, s.logs, s.publisher, cfg, s.logger)

	s.videos.EXPECT().TranscriptStatus(ctx, "dQw4w9WgXcQ").Return(domain.TranscriptMissing, nil)
	s.gateway.EXPECT().FetchTranscript(ctx, youtube.WatchURL("dQw4w9WgXcQ")).
		Return(goodTranscript(), extractor.RunInfo{}, nil)

	s.videos.EXPECT().UpsertTranscript(ctx, "dQw4w9WgXcQ", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, t *domain.Transcript, _ any) error {
			s.True(t.LowQuality)
			s.Less(t.QualityScore, 0.7)
			return nil
		})
	s.videos.EXPECT().GetByVideoID(ctx, "dQw4w9WgXcQ").
		Return(&domain.Video{VideoID: "dQw4w9WgXcQ", LowQuality: true}, nil)
	s.publisher.EXPECT().PublishVideo(ctx, gomock.Any()).Return(nil)

	result := manager.IngestOne(ctx, "dQw4w9WgXcQ", false)

	s.Equal(domain.TranscriptResultSucceeded, result.Status)
	s.True(result.LowQuality)
	s.True(result.Published)
}

func (s *TranscriptIngestionTestSuite) TestIngestBatch_PartialFailuresIsolated() {
	ctx := context.Background()
	ids := []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc", "ddddddddddd", "eeeeeeeeeee"}

	s.logs.EXPECT().Start(gomock.Any(), gomock.Any()).Return(int64(9), nil)

	for _, id := range ids {
		if id == "ccccccccccc" {
			s.videos.EXPECT().TranscriptStatus(gomock.Any(), id).Return(domain.TranscriptMissing, nil)
			s.gateway.EXPECT().FetchTranscript(gomock.Any(), youtube.WatchURL(id)).
				Return(nil, extractor.RunInfo{}, extractor.ErrTranscriptUnavailable)
			s.videos.EXPECT().MarkTranscriptUnavailable(gomock.Any(), id, gomock.Any()).Return(nil)
			continue
		}
		s.expectSuccess(id)
	}

	s.logs.EXPECT().Complete(gomock.Any(), int64(9), 4, "", "").Return(nil)

	stats := s.manager.IngestBatch(ctx, ids)

	s.Equal(5, stats.Total)
	s.Equal(4, stats.Succeeded)
	s.Equal(1, stats.Unavailable)
	s.Equal(0, stats.Failed)
	s.Equal(4, stats.Published)
	s.Empty(stats.Errors)
}

func (s *TranscriptIngestionTestSuite) TestIngestBatch_Empty() {
	stats := s.manager.IngestBatch(context.Background(), nil)

	s.Equal(0, stats.Total)
	s.Equal(0, stats.Succeeded)
}
