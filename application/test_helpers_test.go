package application

import (
	"context"

	"bettracker/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	userRepo       interfaces.UserRepository
	wagerRepo      interfaces.WagerRepository
	statsRepo      interfaces.StatsRepository
	eventPublisher interfaces.EventPublisher
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() interfaces.UserRepository   { return m.userRepo }
func (m *MockUnitOfWork) WagerRepository() interfaces.WagerRepository { return m.wagerRepo }
func (m *MockUnitOfWork) StatsRepository() interfaces.StatsRepository { return m.statsRepo }
func (m *MockUnitOfWork) EventBus() interfaces.EventPublisher         { return m.eventPublisher }

// MockUnitOfWorkFactory returns a preconfigured unit of work per guild
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) CreateForGuild(guildID int64) UnitOfWork {
	args := m.Called(guildID)
	return args.Get(0).(UnitOfWork)
}
