package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	cacheMocks "github.com/gcordner/chargeguard/internal/cache/mocks"
	"github.com/gcordner/chargeguard/internal/model"
	rpsMocks "github.com/gcordner/chargeguard/internal/repository/mocks"
)

type watchlistTestData struct {
	ctx     context.Context
	entries []*model.Entry
}

type watchlistServiceTestSuite struct {
	suite.Suite
	watchlistSvc   WatchlistService
	entryRpsMock   *rpsMocks.EntryRepository
	entryCacheMock *cacheMocks.WatchlistCache
	testData       *watchlistTestData
}

func (s *watchlistServiceTestSuite) SetupSuite() {
	s.testData = &watchlistTestData{
		ctx: context.Background(),
		entries: []*model.Entry{
			{
				ID:            "ecc770d9-4576-4f72-affa-8b1454246692",
				FirstName:     "Jane",
				LastName:      "Doe",
				StreetAddress: "1 Main St",
				Email:         "jane@x.com",
				Phone:         "555-123-4567",
				Status:        "Collection - FCR",
			},
			{
				ID:        "5f1a8f45-c4d4-45e3-9bc2-2b9f15334e2b",
				FirstName: "Tom",
				LastName:  "Brown",
				Email:     "tom@y.org",
				Disabled:  true,
			},
		},
	}
}

func (s *watchlistServiceTestSuite) SetupTest() {
	t := s.T()
	s.entryRpsMock = rpsMocks.NewEntryRepository(t)
	s.entryCacheMock = cacheMocks.NewWatchlistCache(t)
	s.watchlistSvc = NewWatchlistService(s.entryRpsMock, s.entryCacheMock)
}

func (s *watchlistServiceTestSuite) TestFindAllFromCache() {
	ctx := s.testData.ctx
	entries := s.testData.entries

	s.entryCacheMock.On("Entries", ctx).Return(entries, nil).Once()

	s.T().Log("watchlist must be served from cache")
	{
		found, err := s.watchlistSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, len(entries), "all cached entries must be returned")
		s.entryRpsMock.AssertNotCalled(s.T(), "FindAll", ctx)
	}
}

func (s *watchlistServiceTestSuite) TestFindAllCacheMissSnapshotCached() {
	ctx := s.testData.ctx
	entries := s.testData.entries

	s.entryCacheMock.On("Entries", ctx).Return(nil, nil).Once()
	s.entryRpsMock.On("FindAll", ctx).Return(entries, nil).Once()
	s.entryCacheMock.On("Put", ctx, entries).Return(nil).Once()

	s.T().Log("watchlist is missing in cache, read from store and cached")
	{
		found, err := s.watchlistSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, len(entries), "all stored entries must be returned")
		s.entryCacheMock.AssertCalled(s.T(), "Put", ctx, entries)
	}
}

func (s *watchlistServiceTestSuite) TestFindAllCacheFaultFallsBackToStore() {
	ctx := s.testData.ctx
	entries := s.testData.entries

	s.entryCacheMock.On("Entries", ctx).Return(nil, errors.New("cache err")).Once()
	s.entryRpsMock.On("FindAll", ctx).Return(entries, nil).Once()
	s.entryCacheMock.On("Put", ctx, entries).Return(nil).Once()

	s.T().Log("cache fault must not prevent reading from store")
	{
		found, err := s.watchlistSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, len(entries), "all stored entries must be returned")
	}
}

func (s *watchlistServiceTestSuite) TestFindAllStoreFault() {
	ctx := s.testData.ctx

	s.entryCacheMock.On("Entries", ctx).Return(nil, nil).Once()
	s.entryRpsMock.On("FindAll", ctx).Return(nil, errors.New("store err")).Once()

	s.T().Log("store fault must be raised up")
	{
		_, err := s.watchlistSvc.FindAll(ctx)
		s.Assert().Error(err, "store raised error - error must be raised up")
		s.entryCacheMock.AssertNotCalled(s.T(), "Put", ctx, mock.Anything)
	}
}

func (s *watchlistServiceTestSuite) TestCreateAssignsIdentityAndTrims() {
	ctx := s.testData.ctx

	s.entryRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Entry")).Return(nil).Once()
	s.entryCacheMock.On("Evict", ctx).Return(nil).Once()

	s.T().Log("new entry gets an id, trimmed fields and participates in matching")
	{
		created, err := s.watchlistSvc.Create(ctx, &model.Entry{
			FirstName:     "  Jane ",
			LastName:      " Doe ",
			StreetAddress: " 1 Main St ",
			Email:         " jane@x.com ",
			Phone:         " 555-123-4567 ",
			Status:        " Paid ",
		})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(created.ID, "id must be assigned")
		s.Assert().False(created.CreatedAt.IsZero(), "creation timestamp must be assigned")
		s.Assert().False(created.Disabled, "new entries must participate in matching")
		s.Assert().Equal("Jane", created.FirstName)
		s.Assert().Equal("Doe", created.LastName)
		s.Assert().Equal("1 Main St", created.StreetAddress)
		s.Assert().Equal("jane@x.com", created.Email)
		s.Assert().Equal("555-123-4567", created.Phone)
		s.Assert().Equal("Paid", created.Status)
		s.entryCacheMock.AssertCalled(s.T(), "Evict", ctx)
	}
}

func (s *watchlistServiceTestSuite) TestCreateSurvivesEvictionFault() {
	ctx := s.testData.ctx

	s.entryRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Entry")).Return(nil).Once()
	s.entryCacheMock.On("Evict", ctx).Return(errors.New("cache err")).Once()

	s.T().Log("entry is durable, eviction fault must not fail the create")
	{
		created, err := s.watchlistSvc.Create(ctx, &model.Entry{Email: "jane@x.com"})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(created, "created entry must be returned")
	}
}

func (s *watchlistServiceTestSuite) TestDeleteSurvivesEvictionFault() {
	ctx := s.testData.ctx
	ids := []string{s.testData.entries[0].ID}

	s.entryRpsMock.On("DeleteByIDs", ctx, ids).Return(int64(1), nil).Once()
	s.entryCacheMock.On("Evict", ctx).Return(errors.New("cache err")).Once()

	s.T().Log("entries are gone from the store, eviction fault must not fail the delete")
	{
		err := s.watchlistSvc.DeleteByIDs(ctx, ids)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *watchlistServiceTestSuite) TestSetDisabledEvictsSnapshot() {
	ctx := s.testData.ctx
	id := s.testData.entries[0].ID

	s.entryRpsMock.On("SetDisabled", ctx, id, true).Return(true, nil).Once()
	s.entryCacheMock.On("Evict", ctx).Return(nil).Once()

	s.T().Log("suppression update must evict the cached snapshot")
	{
		err := s.watchlistSvc.SetDisabled(ctx, id, true)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *watchlistServiceTestSuite) TestSetDisabledUnknownEntrySilentlySkipped() {
	ctx := s.testData.ctx
	id := "64bd6c41-874b-4fd7-8a2e-9c47f1b65f0e"

	s.entryRpsMock.On("SetDisabled", ctx, id, true).Return(false, nil).Once()

	s.T().Log("suppression update for a deleted entry is a no-op")
	{
		err := s.watchlistSvc.SetDisabled(ctx, id, true)
		s.Assert().NoError(err, "no error must be raised")
		s.entryCacheMock.AssertNotCalled(s.T(), "Evict", ctx)
	}
}

func (s *watchlistServiceTestSuite) TestDeleteByIDsEvictsSnapshot() {
	ctx := s.testData.ctx
	ids := []string{s.testData.entries[0].ID, s.testData.entries[1].ID}

	s.entryRpsMock.On("DeleteByIDs", ctx, ids).Return(int64(1), nil).Once()
	s.entryCacheMock.On("Evict", ctx).Return(nil).Once()

	s.T().Log("delete must evict the cached snapshot even when some ids were already gone")
	{
		err := s.watchlistSvc.DeleteByIDs(ctx, ids)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func TestWatchlistService(t *testing.T) {
	suite.Run(t, new(watchlistServiceTestSuite))
}
