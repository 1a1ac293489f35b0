package instagram

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
)

// ReplyDispatcher posts brand replies to Instagram and records them locally.
type ReplyDispatcher struct {
	comments CommentRepository
	accounts AccountRepository
	replies  ReplyRepository
	graph    GraphClient
	now      func() time.Time
	log      *logrus.Entry
}

func NewReplyDispatcher(comments CommentRepository, accounts AccountRepository, replies ReplyRepository, client GraphClient, logger *logrus.Logger) *ReplyDispatcher {
	return &ReplyDispatcher{
		comments: comments,
		accounts: accounts,
		replies:  replies,
		graph:    client,
		now:      time.Now,
		log:      logger.WithField("module", "reply"),
	}
}

// Reply returns the id Instagram assigned to the reply. The comment must
// belong to brandID.
func (d *ReplyDispatcher) Reply(ctx context.Context, commentID, brandID, userID uint, text string) (string, error) {
	text, err := common.ValidateReplyText(text)
	if err != nil {
		return "", err
	}

	comment, err := d.comments.FindByIDAndBrand(ctx, commentID, brandID)
	if err != nil {
		return "", err
	}

	account, err := d.accounts.FindByID(ctx, comment.InstagramAccountID)
	if err != nil {
		return "", err
	}

	replyID, err := d.graph.PostReply(ctx, account.AccessToken, comment.CommentID, text)
	if err != nil {
		return "", fmt.Errorf("failed to post reply: %w", err)
	}
	if replyID == "" {
		return "", fmt.Errorf("%w: no id returned for comment %s", common.ErrReplyDispatch, comment.CommentID)
	}

	log := d.log.WithFields(logrus.Fields{
		"brand_id":   brandID,
		"comment_id": comment.ID,
		"reply_id":   replyID,
	})

	// The reply is live on Instagram from here on. Local writes are not
	// compensated; a failure leaves the external id in the log only.
	reply := &dbmysql.Reply{
		CommentID: comment.ID,
		BrandID:   brandID,
		UserID:    userID,
		ReplyID:   replyID,
		Text:      text,
		SentAt:    d.now(),
	}
	if err := d.replies.Create(ctx, reply); err != nil {
		log.WithError(err).Error("reply posted but not recorded")
		return "", err
	}

	if err := d.comments.UpdateStatus(ctx, comment.ID, common.CommentStatusReplied); err != nil {
		log.WithError(err).Error("reply recorded but comment status not updated")
		return "", err
	}

	log.Info("reply sent")
	return replyID, nil
}
