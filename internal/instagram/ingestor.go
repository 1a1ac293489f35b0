package instagram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
	"github.com/vanshaj8/Promptly/internal/graph"
)

var errMissingCommentID = errors.New("comment has no id")

// CommentIngestor stores each external comment exactly once.
type CommentIngestor struct {
	comments CommentRepository
	now      func() time.Time
	log      *logrus.Entry
}

func NewCommentIngestor(comments CommentRepository, logger *logrus.Logger) *CommentIngestor {
	return &CommentIngestor{
		comments: comments,
		now:      time.Now,
		log:      logger.WithField("module", "ingestor"),
	}
}

// Ingest reports whether a new row was written. Already-known ids return false
// without touching the stored row.
func (i *CommentIngestor) Ingest(ctx context.Context, raw graph.Comment, account *dbmysql.InstagramAccount) (bool, error) {
	if raw.ID == "" {
		return false, errMissingCommentID
	}

	exists, err := i.comments.ExistsByExternalID(ctx, raw.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	comment := &dbmysql.Comment{
		BrandID:            account.BrandID,
		InstagramAccountID: account.ID,
		CommentID:          raw.ID,
		MediaID:            raw.MediaID,
		Text:               raw.Text,
		Username:           raw.AuthorUsername(),
		UserID:             raw.From.ID,
		Timestamp:          parseTimestamp(raw.Timestamp, i.now()),
		LikeCount:          raw.LikeCount,
		Status:             common.CommentStatusOpen,
	}
	if raw.ParentID != "" {
		parent := raw.ParentID
		comment.ParentID = &parent
	}

	if err := i.comments.Create(ctx, comment); err != nil {
		// lost the race to a concurrent insert of the same id
		if errors.Is(err, common.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to store comment %s: %w", raw.ID, err)
	}

	i.log.WithFields(logrus.Fields{
		"brand_id":   account.BrandID,
		"comment_id": raw.ID,
		"media_id":   raw.MediaID,
	}).Debug("comment stored")
	return true, nil
}
