package pg

import (
	"context"
	"testing"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReply(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	added, err := storage.AddReply(ctx, domain.NewReply{
		Content:   "sebuah balasan",
		Owner:     "user-123",
		CommentId: "comment-123",
		ThreadId:  "thread-123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AddedReply{Id: "reply-123", Content: "sebuah balasan", Owner: "user-123"}, added)

	replies, err := storage.GetRepliesByCommentId(ctx, "comment-123")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "comment-123", replies[0].CommentId)
}

func TestVerifyReplyOwner(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	insertReply(t, "reply-123", "comment-123", "user-123", "2021-08-08T07:19:09.775Z")

	assert.NoError(t, storage.VerifyReplyOwner(ctx, "reply-123", "user-123"))

	err := storage.VerifyReplyOwner(ctx, "reply-123", "user-456")
	assert.True(t, internal_errors.IsAuthorization(err))

	err = storage.VerifyReplyOwner(ctx, "reply-xxx", "user-123")
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestDeleteReplyById(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	insertReply(t, "reply-123", "comment-123", "user-123", "2021-08-08T07:19:09.775Z")

	assert.False(t, deletedAt(t, "replies", "reply-123").Valid)
	require.NoError(t, storage.DeleteReplyById(ctx, "reply-123"))
	assert.True(t, deletedAt(t, "replies", "reply-123").Valid)

	err := storage.DeleteReplyById(ctx, "reply-xxx")
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestGetRepliesByCommentId(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	insertReply(t, "reply-2", "comment-123", "user-456", "2021-08-08T09:00:00.000Z")
	insertReply(t, "reply-1", "comment-123", "user-123", "2021-08-08T08:00:00.000Z")
	insertReply(t, "reply-x", "comment-456", "user-123", "2021-08-08T07:00:00.000Z")
	require.NoError(t, storage.DeleteReplyById(ctx, "reply-1"))

	replies, err := storage.GetRepliesByCommentId(ctx, "comment-123")
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "reply-1", replies[0].Id)
	assert.NotNil(t, replies[0].DeletedAt)
	assert.Equal(t, "reply-2", replies[1].Id)
	assert.Nil(t, replies[1].DeletedAt)
}
