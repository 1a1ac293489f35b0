//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/vanshaj8/Promptly/internal/cache"
	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
	"github.com/vanshaj8/Promptly/internal/graph"
	"github.com/vanshaj8/Promptly/internal/instagram"
)

var repositorySet = wire.NewSet(
	dbmysql.NewAccountRepository,
	dbmysql.NewCommentRepository,
	dbmysql.NewReplyRepository,
	wire.Bind(new(instagram.AccountRepository), new(*dbmysql.AccountRepository)),
	wire.Bind(new(instagram.CommentRepository), new(*dbmysql.CommentRepository)),
	wire.Bind(new(instagram.ReplyRepository), new(*dbmysql.ReplyRepository)),
)

var serviceSet = wire.NewSet(
	graph.NewClient,
	wire.Bind(new(instagram.GraphClient), new(*graph.Client)),
	ProvideRedis,
	ProvideAccountCache,
	wire.Bind(new(instagram.ProfileCache), new(*cache.AccountCache)),
	ProvideDeliveryArchive,
	ProvideArchiver,
	instagram.NewCommentIngestor,
	instagram.NewAccountLinker,
	instagram.NewWebhookReceiver,
	instagram.NewSyncPoller,
	instagram.NewReplyDispatcher,
	instagram.NewInbox,
	wire.Bind(new(instagram.LinkService), new(*instagram.AccountLinker)),
	wire.Bind(new(instagram.WebhookService), new(*instagram.WebhookReceiver)),
	wire.Bind(new(instagram.SyncService), new(*instagram.SyncPoller)),
	wire.Bind(new(instagram.ReplyService), new(*instagram.ReplyDispatcher)),
	wire.Bind(new(instagram.InboxService), new(*instagram.Inbox)),
	instagram.NewHandler,
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideDatabase,
		common.NewJWTManager,
		repositorySet,
		serviceSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
