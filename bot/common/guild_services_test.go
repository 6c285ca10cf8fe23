package common

import (
	"context"
	"errors"
	"testing"

	"bettracker/application"
	"bettracker/domain/entities"
	"bettracker/domain/interfaces"
	"bettracker/domain/testhelpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeUnitOfWork struct {
	userRepo   *testhelpers.MockUserRepository
	wagerRepo  *testhelpers.MockWagerRepository
	statsRepo  *testhelpers.MockStatsRepository
	publisher  *testhelpers.MockEventPublisher
	beginErr   error
	committed  bool
	rolledBack bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	return u.beginErr
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed = true
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUnitOfWork) UserRepository() interfaces.UserRepository   { return u.userRepo }
func (u *fakeUnitOfWork) WagerRepository() interfaces.WagerRepository { return u.wagerRepo }
func (u *fakeUnitOfWork) StatsRepository() interfaces.StatsRepository { return u.statsRepo }
func (u *fakeUnitOfWork) EventBus() interfaces.EventPublisher         { return u.publisher }

type fakeFactory struct {
	uow     *fakeUnitOfWork
	guildID int64
}

func (f *fakeFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	f.guildID = guildID
	return f.uow
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		userRepo:  &testhelpers.MockUserRepository{},
		wagerRepo: &testhelpers.MockWagerRepository{},
		statsRepo: &testhelpers.MockStatsRepository{},
		publisher: &testhelpers.MockEventPublisher{},
	}}
}

func testInvoker() *Invoker {
	return &Invoker{
		GuildID:   999,
		DiscordID: 111,
		Profile:   entities.UserProfile{Username: "sharpshooter"},
	}
}

func TestRunInGuild(t *testing.T) {
	ctx := context.Background()
	defaults := ServiceDefaults{DefaultUnitSize: decimal.NewFromInt(100)}
	existing := &entities.User{DiscordID: 111, GuildID: 999, Username: "sharpshooter"}

	t.Run("commits after the callback succeeds", func(t *testing.T) {
		factory := newFakeFactory()
		factory.uow.userRepo.On("GetByDiscordID", ctx, int64(111)).Return(existing, nil)

		var seen *entities.User
		err := RunInGuild(ctx, factory, defaults, testInvoker(), func(svc *GuildServices, user *entities.User) error {
			require.NotNil(t, svc.Wagers)
			require.NotNil(t, svc.Stats)
			seen = user
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, int64(999), factory.guildID)
		assert.Same(t, existing, seen)
		assert.True(t, factory.uow.committed)
		assert.False(t, factory.uow.rolledBack)
	})

	t.Run("rolls back when the callback fails", func(t *testing.T) {
		factory := newFakeFactory()
		factory.uow.userRepo.On("GetByDiscordID", ctx, int64(111)).Return(existing, nil)
		boom := errors.New("boom")

		err := RunInGuild(ctx, factory, defaults, testInvoker(), func(*GuildServices, *entities.User) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.False(t, factory.uow.committed)
		assert.True(t, factory.uow.rolledBack)
	})

	t.Run("registration failure skips the callback", func(t *testing.T) {
		factory := newFakeFactory()
		factory.uow.userRepo.On("GetByDiscordID", ctx, int64(111)).Return(nil, errors.New("timeout"))

		called := false
		err := RunInGuild(ctx, factory, defaults, testInvoker(), func(*GuildServices, *entities.User) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
		factory.uow.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("begin failure", func(t *testing.T) {
		factory := newFakeFactory()
		factory.uow.beginErr = errors.New("pool exhausted")

		err := RunInGuild(ctx, factory, defaults, testInvoker(), func(*GuildServices, *entities.User) error {
			t.Fatal("callback must not run")
			return nil
		})

		assert.ErrorContains(t, err, "failed to begin transaction")
	})
}
