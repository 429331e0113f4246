package usecases_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"storefront-service/internal/module/event/mocks"
	"storefront-service/internal/module/event/models/entity"
	"storefront-service/internal/module/event/models/request"
	"storefront-service/internal/module/event/usecases"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/datetime"
	"storefront-service/internal/pkg/debounce"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/log"
	log_internal "storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/messagestream"
	"storefront-service/internal/pkg/money"
	"storefront-service/internal/pkg/scheduler"
	"storefront-service/internal/pkg/session"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc        usecases.Usecase
	repoMock  *mocks.Repositories
	logMock   log.Logger
	p         *recordingPublisher
	fakeClock *clock.FakeClock
	now       = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	admin     = session.Session{UserID: 1, Role: session.RoleAdmin, Token: "admin-token"}
)

const searchDelay = 500 * time.Millisecond

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

// Close implements message.Publisher.
func (m *recordingPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = append(m.topics, topic)
	return nil
}

func (m *recordingPublisher) Topics() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.topics...)
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &recordingPublisher{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	fakeClock = clock.Fake(now)
	uc = usecases.New(repoMock, logMock, p, fakeClock, debounce.New(fakeClock, searchDelay), 6)
}

func teardown() {
	repoMock = nil
	uc = nil
	p = nil
}

func at(d time.Duration) datetime.Time {
	return datetime.New(now.Add(d))
}

func TestListEvents(t *testing.T) {
	setup()
	defer teardown()

	events := []entity.Event{
		{EventID: 1, Price: 100000, DiscountedPrice: 80000, Date: at(72 * time.Hour)},
		{EventID: 2, Price: 50000, Date: at(-24 * time.Hour)},
		{EventID: 3, Price: 70000, IsFree: true},
		{EventID: 4, Price: 10000},
		{EventID: 5, Price: 10000},
		{EventID: 6, Price: 10000},
		{EventID: 7, Price: 20000},
	}
	discounts := []entity.Discount{
		{DiscountID: 1, EventID: 1, StartDate: at(-time.Hour), EndDate: at(time.Hour)},
		{DiscountID: 2, EventID: 3, StartDate: at(-time.Hour), EndDate: at(time.Hour)},
	}

	t.Run("prices and flags the first page", func(t *testing.T) {
		query := &request.ListEvents{Page: 1}
		repoMock.On("FindEvents", mock.Anything, query).Return(events, nil).Once()
		repoMock.On("FindDiscounts", mock.Anything).Return(discounts, nil).Once()

		resp, err := uc.ListEvents(context.Background(), query)

		require.NoError(t, err)
		require.Len(t, resp.Events, 6)
		assert.Equal(t, 2, resp.Pagination.TotalPages)

		assert.Equal(t, money.Amount(80000), resp.Events[0].EffectivePrice)
		assert.True(t, resp.Events[0].HasDiscount)
		assert.Equal(t, "Rp. 80.000", resp.Events[0].DisplayPrice)
		assert.False(t, resp.Events[0].IsCompleted)

		assert.True(t, resp.Events[1].IsCompleted)

		assert.Equal(t, money.Amount(0), resp.Events[2].EffectivePrice)
		assert.False(t, resp.Events[2].HasDiscount)
		assert.Equal(t, "FREE", resp.Events[2].DisplayPrice)
	})

	t.Run("second page and missing discounts", func(t *testing.T) {
		query := &request.ListEvents{Page: 2}
		repoMock.On("FindEvents", mock.Anything, query).Return(events, nil).Once()
		repoMock.On("FindDiscounts", mock.Anything).Return(nil, errors.Transport("down", nil)).Once()

		resp, err := uc.ListEvents(context.Background(), query)

		require.NoError(t, err)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, int64(7), resp.Events[0].EventID)
		assert.Equal(t, money.Amount(20000), resp.Events[0].EffectivePrice)
	})

	t.Run("backend failure", func(t *testing.T) {
		query := &request.ListEvents{Search: "jazz"}
		repoMock.On("FindEvents", mock.Anything, query).Return(nil, errors.Transport("down", nil)).Once()
		repoMock.On("FindDiscounts", mock.Anything).Return([]entity.Discount{}, nil).Once()

		_, err := uc.ListEvents(context.Background(), query)

		assert.True(t, errors.IsKind(err, errors.KindTransport))
	})
}

func TestSearchEventsSupersedes(t *testing.T) {
	setup()
	defer teardown()

	first := &request.ListEvents{Search: "ja"}
	second := &request.ListEvents{Search: "jazz"}
	repoMock.On("FindEvents", mock.Anything, second).Return([]entity.Event{{EventID: 9, Price: 1000}}, nil).Once()
	repoMock.On("FindDiscounts", mock.Anything).Return([]entity.Discount{}, nil).Once()

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.SearchEvents(context.Background(), "user:5", first)
		firstDone <- err
	}()
	fakeClock.WaitForTimers(1)

	type result struct {
		count int
		err   error
	}
	secondDone := make(chan result, 1)
	go func() {
		resp, err := uc.SearchEvents(context.Background(), "user:5", second)
		secondDone <- result{len(resp.Events), err}
	}()

	assert.ErrorIs(t, <-firstDone, debounce.ErrSuperseded)

	fakeClock.WaitForTimers(1)
	fakeClock.Advance(searchDelay)

	got := <-secondDone
	require.NoError(t, got.err)
	assert.Equal(t, 1, got.count)
	repoMock.AssertNotCalled(t, "FindEvents", mock.Anything, first)
}

func TestGetEvent(t *testing.T) {
	setup()
	defer teardown()

	event := entity.Event{EventID: 4, Price: 100000, DiscountedPrice: 80000, Date: at(48 * time.Hour)}
	discounts := []entity.Discount{
		{DiscountID: 8, EventID: 4, StartDate: at(-time.Hour), EndDate: at(time.Hour)},
	}
	reviews := []entity.Review{{ReviewID: 1, Rating: 4}, {ReviewID: 2, Rating: 5}}

	t.Run("success", func(t *testing.T) {
		repoMock.On("FindEventByID", mock.Anything, int64(4)).Return(event, nil).Once()
		repoMock.On("FindDiscountsByEventID", mock.Anything, int64(4)).Return(discounts, nil).Once()
		repoMock.On("FindReviewsByEventID", mock.Anything, int64(4)).Return(reviews, nil).Once()

		resp, err := uc.GetEvent(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, money.Amount(80000), resp.Event.EffectivePrice)
		require.NotNil(t, resp.ActiveDiscount)
		assert.Equal(t, int64(8), resp.ActiveDiscount.DiscountID)
		assert.Equal(t, 4.5, resp.AverageRating)
	})

	t.Run("reviews unavailable", func(t *testing.T) {
		repoMock.On("FindEventByID", mock.Anything, int64(5)).Return(entity.Event{EventID: 5, Price: 1000}, nil).Once()
		repoMock.On("FindDiscountsByEventID", mock.Anything, int64(5)).Return(nil, nil).Once()
		repoMock.On("FindReviewsByEventID", mock.Anything, int64(5)).Return(nil, stderrors.New("boom")).Once()

		resp, err := uc.GetEvent(context.Background(), 5)

		require.NoError(t, err)
		assert.Empty(t, resp.Reviews)
		assert.NotNil(t, resp.Reviews)
		assert.Equal(t, money.Amount(1000), resp.Event.EffectivePrice)
	})

	t.Run("not found", func(t *testing.T) {
		repoMock.On("FindEventByID", mock.Anything, int64(6)).Return(entity.Event{}, errors.NotFound("event not found")).Once()
		repoMock.On("FindDiscountsByEventID", mock.Anything, int64(6)).Return(nil, nil).Once()
		repoMock.On("FindReviewsByEventID", mock.Anything, int64(6)).Return(nil, nil).Once()

		_, err := uc.GetEvent(context.Background(), 6)

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
	})
}

func TestCreateEvent(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("free event is stored at price zero", func(t *testing.T) {
		payload := &request.UpsertEvent{EventTitle: "Meetup", Description: "d", Category: entity.CategoryTechnology, Price: 50000, IsFree: true, Date: "2024-07-01", Time: "19:00", Location: "Jakarta", SeatQuantity: 10}
		repoMock.On("CreateEvent", ctx, admin.Token, mock.MatchedBy(func(b *request.BackendEvent) bool {
			return b.Price == 0 && b.DiscountedPrice == 0 && b.IsFree
		})).Return(entity.Event{EventID: 11}, nil).Once()

		event, err := uc.CreateEvent(ctx, admin, payload)

		require.NoError(t, err)
		assert.Equal(t, int64(11), event.EventID)
		assert.Equal(t, []string{messagestream.TopicEventChanged}, p.Topics())
	})

	t.Run("invalid date", func(t *testing.T) {
		payload := &request.UpsertEvent{EventTitle: "Meetup", Date: "next friday", SeatQuantity: 1}

		_, err := uc.CreateEvent(ctx, admin, payload)

		var ve *errors.ValidationError
		require.True(t, stderrors.As(err, &ve))
		assert.Contains(t, ve.Fields, "date")
	})
}

func TestUpdateEventPreservesDiscountedPrice(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	payload := &request.UpsertEvent{EventTitle: "Gig", Description: "d", Category: entity.CategoryMusic, Price: 120000, Date: "2024-07-01", Time: "20:00", Location: "Bandung", SeatQuantity: 50}
	repoMock.On("FindAdminEventByID", ctx, admin.Token, int64(3)).Return(entity.Event{EventID: 3, Price: 100000, DiscountedPrice: 80000}, nil).Once()
	repoMock.On("UpdateEvent", ctx, admin.Token, int64(3), mock.MatchedBy(func(b *request.BackendEvent) bool {
		return b.Price == 120000 && b.DiscountedPrice == 80000
	})).Return(entity.Event{EventID: 3}, nil).Once()

	_, err := uc.UpdateEvent(ctx, admin, 3, payload)

	require.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestDeleteEvent(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	repoMock.On("DeleteEvent", ctx, admin.Token, int64(3)).Return(nil).Once()

	require.NoError(t, uc.DeleteEvent(ctx, admin, 3))
	assert.Equal(t, []string{messagestream.TopicEventChanged}, p.Topics())
}

func TestCreateDiscount(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("window must not be inverted", func(t *testing.T) {
		payload := &request.CreateDiscount{EventID: 1, DiscountPercentage: 20, StartDate: "2024-06-20", EndDate: "2024-06-10"}

		_, err := uc.CreateDiscount(ctx, admin, payload)

		var ve *errors.ValidationError
		require.True(t, stderrors.As(err, &ve))
		assert.Contains(t, ve.Fields, "end_date")
		repoMock.AssertNotCalled(t, "CreateDiscount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("free events cannot be discounted", func(t *testing.T) {
		payload := &request.CreateDiscount{EventID: 2, DiscountPercentage: 20, StartDate: "2024-06-16", EndDate: "2024-06-20"}
		repoMock.On("FindAdminEventByID", ctx, admin.Token, int64(2)).Return(entity.Event{EventID: 2, IsFree: true}, nil).Once()

		_, err := uc.CreateDiscount(ctx, admin, payload)

		assert.True(t, errors.IsKind(err, errors.KindRejected))
	})

	t.Run("zero price events cannot be discounted", func(t *testing.T) {
		payload := &request.CreateDiscount{EventID: 5, DiscountPercentage: 20, StartDate: "2024-06-16", EndDate: "2024-06-20"}
		repoMock.On("FindAdminEventByID", ctx, admin.Token, int64(5)).Return(entity.Event{EventID: 5, Price: 0}, nil).Once()

		_, err := uc.CreateDiscount(ctx, admin, payload)

		assert.True(t, errors.IsKind(err, errors.KindRejected))
		repoMock.AssertNotCalled(t, "CreateDiscount", mock.Anything, mock.Anything, payload)
	})

	t.Run("already discounted events are rejected", func(t *testing.T) {
		payload := &request.CreateDiscount{EventID: 6, DiscountPercentage: 20, StartDate: "2024-06-16", EndDate: "2024-06-20"}
		repoMock.On("FindAdminEventByID", ctx, admin.Token, int64(6)).Return(entity.Event{EventID: 6, Price: 100000, DiscountedPrice: 80000}, nil).Once()

		_, err := uc.CreateDiscount(ctx, admin, payload)

		assert.True(t, errors.IsKind(err, errors.KindRejected))
		assert.Equal(t, "event already has a discount", errors.Message(err))
		repoMock.AssertNotCalled(t, "CreateDiscount", mock.Anything, mock.Anything, payload)
	})

	t.Run("schedules purges at both window edges", func(t *testing.T) {
		payload := &request.CreateDiscount{EventID: 1, DiscountPercentage: 20, StartDate: "2024-06-16T00:00:00Z", EndDate: "2024-06-20T00:00:00Z"}
		repoMock.On("FindAdminEventByID", ctx, admin.Token, int64(1)).Return(entity.Event{EventID: 1, Price: 100000}, nil).Once()
		repoMock.On("CreateDiscount", ctx, admin.Token, payload).Return(entity.Discount{DiscountID: 7, EventID: 1}, nil).Once()
		repoMock.On("SchedulePurgeEventCache", ctx, scheduler.PurgeEventCache{EventID: 1, DiscountID: 7, Boundary: "start"}, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)).Return("task-1", nil).Once()
		repoMock.On("SchedulePurgeEventCache", ctx, scheduler.PurgeEventCache{EventID: 1, DiscountID: 7, Boundary: "end"}, time.Date(2024, 6, 20, 0, 0, 1, 0, time.UTC)).Return("task-2", nil).Once()

		discount, err := uc.CreateDiscount(ctx, admin, payload)

		require.NoError(t, err)
		assert.Equal(t, int64(7), discount.DiscountID)
		repoMock.AssertNumberOfCalls(t, "SchedulePurgeEventCache", 2)
	})

	t.Run("past edges are not scheduled", func(t *testing.T) {
		payload := &request.CreateDiscount{EventID: 4, DiscountPercentage: 10, StartDate: "2024-06-01", EndDate: "2024-06-10"}
		repoMock.On("FindAdminEventByID", ctx, admin.Token, int64(4)).Return(entity.Event{EventID: 4, Price: 100000}, nil).Once()
		repoMock.On("CreateDiscount", ctx, admin.Token, payload).Return(entity.Discount{DiscountID: 8, EventID: 4}, nil).Once()

		_, err := uc.CreateDiscount(ctx, admin, payload)

		require.NoError(t, err)
		repoMock.AssertNumberOfCalls(t, "SchedulePurgeEventCache", 2)
	})
}

func TestConsumeEventChanged(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	repoMock.On("PurgeEventCache", ctx).Return(3, nil).Once()
	assert.NoError(t, uc.ConsumeEventChanged(ctx, &request.EventChanged{EventID: 1, Action: usecases.ActionUpdated}))

	repoMock.On("PurgeEventCache", ctx).Return(0, errors.InternalServerError("redis down")).Once()
	assert.Error(t, uc.PurgeEventCache(ctx, &scheduler.PurgeEventCache{EventID: 1, Boundary: "end"}))
}
