package instagram

import (
	"context"
	"time"

	"github.com/vanshaj8/Promptly/internal/cache"
	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
	"github.com/vanshaj8/Promptly/internal/graph"
)

//go:generate mockgen -source=interfaces.go -destination=mock_repository.go -package=instagram

type AccountRepository interface {
	FindByExternalID(ctx context.Context, externalID string) (*dbmysql.InstagramAccount, error)
	FindByID(ctx context.Context, id uint) (*dbmysql.InstagramAccount, error)
	FindConnectedByBrand(ctx context.Context, brandID uint) (*dbmysql.InstagramAccount, error)
	ListConnected(ctx context.Context) ([]*dbmysql.InstagramAccount, error)
	Create(ctx context.Context, account *dbmysql.InstagramAccount) error
	Retarget(ctx context.Context, account *dbmysql.InstagramAccount) error
	DisconnectBrand(ctx context.Context, brandID uint) ([]uint, error)
	DisconnectOthers(ctx context.Context, brandID, keepID uint) ([]uint, error)
	UpdateLastSync(ctx context.Context, id uint, at time.Time) error
}

type CommentRepository interface {
	ExistsByExternalID(ctx context.Context, commentID string) (bool, error)
	Create(ctx context.Context, comment *dbmysql.Comment) error
	FindByIDAndBrand(ctx context.Context, id, brandID uint) (*dbmysql.Comment, error)
	UpdateStatus(ctx context.Context, id uint, status common.CommentStatus) error
	ListByBrand(ctx context.Context, brandID uint, status common.CommentStatus, limit, offset int) ([]*dbmysql.Comment, int64, error)
}

type ReplyRepository interface {
	Create(ctx context.Context, reply *dbmysql.Reply) error
	ListByComment(ctx context.Context, commentID uint) ([]*dbmysql.Reply, error)
}

// GraphClient is the subset of the Graph API the integration needs.
type GraphClient interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	ListPages(ctx context.Context, userToken string) ([]graph.Page, error)
	GetBusinessAccount(ctx context.Context, pageToken, igID string) (*graph.BusinessAccount, error)
	ListMedia(ctx context.Context, token, igID string) ([]graph.Media, error)
	ListComments(ctx context.Context, token, mediaID string) ([]graph.Comment, error)
	PostReply(ctx context.Context, token, commentID, message string) (string, error)
}

type ProfileCache interface {
	Profile(ctx context.Context, accountID uint, load cache.Loader) (*cache.AccountProfile, error)
	Invalidate(ctx context.Context, accountID uint)
}

// DeliveryArchiver stores raw webhook bodies. A nil archiver disables archiving.
type DeliveryArchiver interface {
	Archive(ctx context.Context, requestID string, payload []byte, receivedAt time.Time) error
}
