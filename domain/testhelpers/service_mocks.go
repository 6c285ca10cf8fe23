package testhelpers

import (
	"context"

	"bettracker/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) RecomputeStats(ctx context.Context, discordID int64) (*entities.UserStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserStats), args.Error(1)
}

func (m *MockStatsService) GetUserStats(ctx context.Context, discordID int64) (*entities.UserStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserStats), args.Error(1)
}

func (m *MockStatsService) SetUnitSize(ctx context.Context, discordID int64, unitSize decimal.Decimal) (*entities.UserStats, error) {
	args := m.Called(ctx, discordID, unitSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserStats), args.Error(1)
}

func (m *MockStatsService) GetLeaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}

func (m *MockStatsService) RebuildAll(ctx context.Context) (*entities.RebuildResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RebuildResult), args.Error(1)
}
