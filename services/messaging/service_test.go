package messaging

import (
	"context"
	"strings"
	"sync"
	"testing"

	"wanderly/models"
	"wanderly/services/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []models.Message
	convs    map[string]models.Conversation
	notifs   []models.Notification
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{convs: make(map[string]models.Conversation)}
}

func (r *fakeMessageRepo) SendTransactionally(ctx context.Context, msg *models.Message, conv *models.Conversation, notif *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *msg)
	existing, ok := r.convs[conv.ID]
	if ok {
		existing.LastMessage = conv.LastMessage
		existing.UpdatedAt = conv.UpdatedAt
		existing.UnreadCount++
		r.convs[conv.ID] = existing
	} else {
		c := *conv
		c.UnreadCount = 1
		r.convs[c.ID] = c
	}
	r.notifs = append(r.notifs, *notif)
	return nil
}

func (r *fakeMessageRepo) ListBetween(ctx context.Context, user1ID, user2ID string, limit int64) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Message
	for _, m := range r.messages {
		if (m.SenderID == user1ID && m.ReceiverID == user2ID) || (m.SenderID == user2ID && m.ReceiverID == user1ID) {
			out = append(out, m)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Conversation
	for _, c := range r.convs {
		for _, p := range c.Participants {
			if p == userID {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkReadFrom(ctx context.Context, senderID, receiverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].SenderID == senderID && r.messages[i].ReceiverID == receiverID {
			r.messages[i].Read = true
		}
	}
	return nil
}

func (r *fakeMessageRepo) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.messages {
		if m.ReceiverID == receiverID && !m.Read {
			n++
		}
	}
	return n, nil
}

func newTestService() (*DefaultMessagingService, *fakeMessageRepo) {
	repo := newFakeMessageRepo()
	svc := &DefaultMessagingService{
		Repo:   repo,
		Feed:   feed.NewHub(nil, zap.NewNop()),
		Logger: zap.NewNop(),
	}
	return svc, repo
}

func TestSendMessageValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "user-1", "user-2", "")
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.SendMessage(ctx, "user-1", "user-1", "hello me")
	require.ErrorIs(t, err, ErrSelfMessage)
}

func TestSendMessageWritesThreadAndNotification(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id, err := svc.SendMessage(ctx, "user-1", "user-2", "See you at the lake on Saturday?")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, repo.messages, 1)
	msg := repo.messages[0]
	assert.Equal(t, "user-1", msg.SenderID)
	assert.Equal(t, "user-2", msg.ReceiverID)
	assert.False(t, msg.Read)

	conv, ok := repo.convs[models.ConversationID("user-1", "user-2")]
	require.True(t, ok)
	assert.Equal(t, []string{"user-1", "user-2"}, conv.Participants)
	require.NotNil(t, conv.LastMessage)
	assert.Equal(t, id, conv.LastMessage.ID)

	require.Len(t, repo.notifs, 1)
	n := repo.notifs[0]
	assert.Equal(t, "user-2", n.UserID)
	assert.Equal(t, "New Message", n.Title)
	assert.Equal(t, "See you at the lake on Saturday?", n.Message)
	assert.Equal(t, models.NotifyMessage, n.Type)
	assert.Equal(t, id, n.RelatedID)
}

func TestSendMessageTruncatesNotificationPreview(t *testing.T) {
	svc, repo := newTestService()

	long := strings.Repeat("a", 200)
	_, err := svc.SendMessage(context.Background(), "user-1", "user-2", long)
	require.NoError(t, err)

	n := repo.notifs[0]
	assert.Equal(t, strings.Repeat("a", 80)+"…", n.Message)
	// The stored message keeps the full content.
	assert.Equal(t, long, repo.messages[0].Content)
}

func TestConversationIDIsStableAcrossDirections(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "user-1", "user-2", "hi")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "user-2", "user-1", "hey back")
	require.NoError(t, err)

	// Both directions land in one conversation document.
	assert.Len(t, repo.convs, 1)
	conv := repo.convs[models.ConversationID("user-2", "user-1")]
	assert.Equal(t, 2, conv.UnreadCount)
}

func TestMarkMessagesReadAndUnreadCount(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "user-1", "user-2", "one")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "user-1", "user-2", "two")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "user-3", "user-2", "three")
	require.NoError(t, err)

	unread, err := svc.UnreadCount(ctx, "user-2")
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	// Reading one thread leaves the other sender's messages unread.
	require.NoError(t, svc.MarkMessagesRead(ctx, "user-2", "user-1"))
	unread, err = svc.UnreadCount(ctx, "user-2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)
}
