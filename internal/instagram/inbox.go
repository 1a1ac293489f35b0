package instagram

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vanshaj8/Promptly/internal/cache"
	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
)

type CommentFilter struct {
	Status common.CommentStatus
	Limit  int
	Offset int
}

// CommentView is a stored comment with the display name of the account it arrived on.
type CommentView struct {
	*dbmysql.Comment
	AccountUsername string `json:"account_username"`
}

type CommentPage struct {
	Comments []CommentView `json:"comments"`
	Total    int64         `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

type CommentDetail struct {
	CommentView
	Replies []*dbmysql.Reply `json:"replies"`
}

// Inbox is the read side used by brand staff.
type Inbox struct {
	comments CommentRepository
	replies  ReplyRepository
	accounts AccountRepository
	profiles ProfileCache
	log      *logrus.Entry
}

func NewInbox(comments CommentRepository, replies ReplyRepository, accounts AccountRepository, profiles ProfileCache, logger *logrus.Logger) *Inbox {
	return &Inbox{
		comments: comments,
		replies:  replies,
		accounts: accounts,
		profiles: profiles,
		log:      logger.WithField("module", "inbox"),
	}
}

func (i *Inbox) ListComments(ctx context.Context, brandID uint, filter CommentFilter) (*CommentPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, common.ErrInvalidStatus
	}
	limit, offset := common.NormalizePage(filter.Limit, filter.Offset)

	comments, total, err := i.comments.ListByBrand(ctx, brandID, filter.Status, limit, offset)
	if err != nil {
		return nil, err
	}

	usernames := make(map[uint]string)
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		name, ok := usernames[c.InstagramAccountID]
		if !ok {
			name = i.accountUsername(ctx, c.InstagramAccountID)
			usernames[c.InstagramAccountID] = name
		}
		views = append(views, CommentView{Comment: c, AccountUsername: name})
	}

	return &CommentPage{Comments: views, Total: total, Limit: limit, Offset: offset}, nil
}

func (i *Inbox) GetComment(ctx context.Context, commentID, brandID uint) (*CommentDetail, error) {
	comment, err := i.comments.FindByIDAndBrand(ctx, commentID, brandID)
	if err != nil {
		return nil, err
	}

	replies, err := i.replies.ListByComment(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if replies == nil {
		replies = []*dbmysql.Reply{}
	}

	return &CommentDetail{
		CommentView: CommentView{
			Comment:         comment,
			AccountUsername: i.accountUsername(ctx, comment.InstagramAccountID),
		},
		Replies: replies,
	}, nil
}

// accountUsername is best effort; a lookup failure leaves the name empty.
func (i *Inbox) accountUsername(ctx context.Context, accountID uint) string {
	profile, err := i.profiles.Profile(ctx, accountID, i.loadProfile)
	if err != nil {
		i.log.WithError(err).WithField("account_id", accountID).Warn("account profile unavailable")
		return ""
	}
	return profile.Username
}

func (i *Inbox) loadProfile(ctx context.Context, accountID uint) (*cache.AccountProfile, error) {
	account, err := i.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &cache.AccountProfile{
		AccountID:         account.ID,
		Username:          account.Username,
		ProfilePictureURL: account.ProfilePictureURL,
	}, nil
}
