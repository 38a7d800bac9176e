package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kamikazebr/engage-server/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reactorMocks struct {
	products      *mockProductStore
	users         *mockUserStore
	notifications *mockNotificationStore
	push          *mockPushSender
}

func newReactor() (*LikeReactor, *reactorMocks) {
	m := &reactorMocks{
		products:      &mockProductStore{},
		users:         &mockUserStore{},
		notifications: &mockNotificationStore{},
		push:          &mockPushSender{},
	}
	return NewLikeReactor(m.products, m.users, m.notifications, m.push), m
}

var lamp = &models.Product{ID: "p1", Name: "Lamp", CreatedBy: "owner"}

func TestOnLikeCreated_NotifiesOwner(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)
	m.users.On("GetByID", mock.Anything, "liker").Return(&models.UserProfile{ID: "liker", Name: "Sam", ProfileImageURL: "sam.png"}, nil)
	m.users.On("GetByID", mock.Anything, "owner").Return(&models.UserProfile{ID: "owner", FCMToken: "owner-token"}, nil)

	var stored *models.NotificationRecord
	m.notifications.On("Create", mock.Anything, mock.AnythingOfType("*models.NotificationRecord")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.NotificationRecord) }).
		Return(nil).Once()

	var sent *models.PushMessage
	m.push.On("Send", mock.Anything, mock.AnythingOfType("*models.PushMessage")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*models.PushMessage) }).
		Return("msg-1", nil).Once()

	r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})

	require.NotNil(t, stored)
	assert.Equal(t, "owner", stored.RecipientUID)
	assert.Equal(t, "liker", stored.SenderUID)
	assert.Equal(t, "Sam", stored.SenderName)
	assert.Equal(t, "sam.png", stored.SenderImageURL)
	assert.Equal(t, models.NotificationProductLike, stored.Type)
	assert.Equal(t, "p1", stored.ProductID)
	assert.Equal(t, "Lamp", stored.ProductName)
	assert.Equal(t, "Sam liked your product Lamp", stored.Message)
	assert.False(t, stored.Read)
	assert.True(t, stored.Timestamp.IsZero(), "timestamp is assigned by the store")

	require.NotNil(t, sent)
	assert.Equal(t, "owner-token", sent.Token)
	assert.Equal(t, "product_like", sent.Data["type"])
	assert.Equal(t, "p1", sent.Data["productId"])
	assert.Equal(t, "liker", sent.Data["senderUid"])

	m.notifications.AssertNumberOfCalls(t, "Create", 1)
	m.push.AssertNumberOfCalls(t, "Send", 1)
}

func TestOnLikeCreated_SelfLike_NoEffects(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)

	r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "owner"})

	m.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	m.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestOnLikeCreated_ProductMissing_NoEffects(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "gone").Return(nil, nil)

	assert.NotPanics(t, func() {
		r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "gone", UserID: "liker"})
	})

	m.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestOnLikeCreated_ProductLookupError_Absorbed(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(nil, errors.New("unavailable"))

	assert.NotPanics(t, func() {
		r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})
	})
	m.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOnLikeCreated_MissingFields_NoEffects(t *testing.T) {
	r, m := newReactor()

	r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1"})
	r.OnLikeCreated(context.Background(), models.LikeRelation{UserID: "liker"})

	m.products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOnLikeCreated_LikerProfileMissing_UsesAnonymous(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)
	m.users.On("GetByID", mock.Anything, "liker").Return(nil, nil)
	m.users.On("GetByID", mock.Anything, "owner").Return(&models.UserProfile{ID: "owner"}, nil)

	var stored *models.NotificationRecord
	m.notifications.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.NotificationRecord) }).
		Return(nil)

	r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})

	require.NotNil(t, stored)
	assert.Equal(t, "Anonymous", stored.SenderName)
	assert.Empty(t, stored.SenderImageURL)
	assert.Equal(t, "Anonymous liked your product Lamp", stored.Message)
}

func TestOnLikeCreated_LikerLookupError_StillNotifies(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)
	m.users.On("GetByID", mock.Anything, "liker").Return(nil, errors.New("timeout"))
	m.users.On("GetByID", mock.Anything, "owner").Return(&models.UserProfile{ID: "owner", FCMToken: "tok"}, nil)
	m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.push.On("Send", mock.Anything, mock.Anything).Return("msg", nil)

	r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})

	m.notifications.AssertNumberOfCalls(t, "Create", 1)
	m.push.AssertNumberOfCalls(t, "Send", 1)
}

func TestOnLikeCreated_OwnerWithoutToken_RecordOnly(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)
	m.users.On("GetByID", mock.Anything, "liker").Return(&models.UserProfile{ID: "liker", Name: "Sam"}, nil)
	m.users.On("GetByID", mock.Anything, "owner").Return(&models.UserProfile{ID: "owner"}, nil)
	m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})

	m.notifications.AssertNumberOfCalls(t, "Create", 1)
	m.push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestOnLikeCreated_StoreFailure_NoPush(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)
	m.users.On("GetByID", mock.Anything, "liker").Return(&models.UserProfile{ID: "liker", Name: "Sam"}, nil)
	m.notifications.On("Create", mock.Anything, mock.Anything).Return(errors.New("quota"))

	r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})

	m.push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestOnLikeCreated_PushFailure_RecordStands(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)
	m.users.On("GetByID", mock.Anything, "liker").Return(&models.UserProfile{ID: "liker", Name: "Sam"}, nil)
	m.users.On("GetByID", mock.Anything, "owner").Return(&models.UserProfile{ID: "owner", FCMToken: "tok"}, nil)
	m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.push.On("Send", mock.Anything, mock.Anything).Return("", errors.New("unregistered token"))

	assert.NotPanics(t, func() {
		r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})
	})

	m.notifications.AssertNumberOfCalls(t, "Create", 1)
	m.push.AssertNumberOfCalls(t, "Send", 1)
}

func TestOnLikeCreated_RepeatedLikesEachCreateRecord(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Return(lamp, nil)
	m.users.On("GetByID", mock.Anything, "liker").Return(&models.UserProfile{ID: "liker", Name: "Sam"}, nil)
	m.users.On("GetByID", mock.Anything, "owner").Return(&models.UserProfile{ID: "owner"}, nil)
	m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	like := models.LikeRelation{ProductID: "p1", UserID: "liker"}
	r.OnLikeCreated(context.Background(), like)
	r.OnLikeCreated(context.Background(), like)

	m.notifications.AssertNumberOfCalls(t, "Create", 2)
}

func TestOnLikeCreated_PanicAbsorbed(t *testing.T) {
	r, m := newReactor()
	m.products.On("GetByID", mock.Anything, "p1").Run(func(mock.Arguments) { panic("boom") })

	assert.NotPanics(t, func() {
		r.OnLikeCreated(context.Background(), models.LikeRelation{ProductID: "p1", UserID: "liker"})
	})
}

func TestCommentEvents_AreNoOps(t *testing.T) {
	r, m := newReactor()

	r.OnProductCommentCreated(context.Background(), "c1")
	r.OnPostCommentCreated(context.Background(), "c2")

	m.products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
