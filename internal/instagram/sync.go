package instagram

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vanshaj8/Promptly/internal/dbmysql"
)

// MediaFailure records a media item whose comments could not be listed.
type MediaFailure struct {
	MediaID string `json:"media_id"`
	Err     error  `json:"-"`
}

func (f MediaFailure) Error() string {
	return fmt.Sprintf("media %s: %v", f.MediaID, f.Err)
}

// SyncResult is the outcome of one poll. A sync that hit failures still
// reports what it added.
type SyncResult struct {
	BrandID         uint           `json:"brand_id"`
	AccountID       uint           `json:"account_id"`
	Added           int            `json:"added"`
	Duplicates      int            `json:"duplicates"`
	MediaScanned    int            `json:"media_scanned"`
	MediaFailures   []MediaFailure `json:"media_failures"`
	CommentFailures int            `json:"comment_failures"`
	ListError       error          `json:"-"`
	SyncedAt        time.Time      `json:"synced_at"`
}

// Complete reports whether every listing and ingest succeeded.
func (r *SyncResult) Complete() bool {
	return r.ListError == nil && len(r.MediaFailures) == 0 && r.CommentFailures == 0
}

// BrandSyncResult pairs a brand with its sync outcome in SyncAll.
type BrandSyncResult struct {
	BrandID uint
	Result  *SyncResult
	Err     error
}

type SyncPoller struct {
	accounts AccountRepository
	graph    GraphClient
	ingestor *CommentIngestor
	now      func() time.Time
	log      *logrus.Entry
}

func NewSyncPoller(accounts AccountRepository, client GraphClient, ingestor *CommentIngestor, logger *logrus.Logger) *SyncPoller {
	return &SyncPoller{
		accounts: accounts,
		graph:    client,
		ingestor: ingestor,
		now:      time.Now,
		log:      logger.WithField("module", "sync"),
	}
}

// SyncComments pulls the first page of media and, for each, the first page of
// comments. last_sync_at is advanced even when parts of the walk fail.
func (p *SyncPoller) SyncComments(ctx context.Context, brandID uint) (*SyncResult, error) {
	account, err := p.accounts.FindConnectedByBrand(ctx, brandID)
	if err != nil {
		return nil, noAccount(err)
	}
	return p.syncAccount(ctx, account)
}

// SyncAll polls every connected account. One brand failing does not stop the rest.
func (p *SyncPoller) SyncAll(ctx context.Context) ([]BrandSyncResult, error) {
	accounts, err := p.accounts.ListConnected(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]BrandSyncResult, 0, len(accounts))
	seen := make(map[uint]bool, len(accounts))
	for _, account := range accounts {
		// one account per brand; the newest wins when stale rows linger
		if seen[account.BrandID] {
			continue
		}
		seen[account.BrandID] = true

		res, err := p.syncAccount(ctx, account)
		if err != nil {
			p.log.WithError(err).WithField("brand_id", account.BrandID).Error("brand sync failed")
		}
		results = append(results, BrandSyncResult{BrandID: account.BrandID, Result: res, Err: err})
	}
	return results, nil
}

func (p *SyncPoller) syncAccount(ctx context.Context, account *dbmysql.InstagramAccount) (*SyncResult, error) {
	log := p.log.WithFields(logrus.Fields{"brand_id": account.BrandID, "account_id": account.ID})
	result := &SyncResult{BrandID: account.BrandID, AccountID: account.ID}

	media, err := p.graph.ListMedia(ctx, account.AccessToken, account.InstagramBusinessAccountID)
	if err != nil {
		log.WithError(err).Error("failed to list media")
		result.ListError = err
	}

	for _, m := range media {
		result.MediaScanned++
		p.syncMedia(ctx, log, account, m.ID, result)
	}

	result.SyncedAt = p.now()
	if err := p.accounts.UpdateLastSync(ctx, account.ID, result.SyncedAt); err != nil {
		return result, fmt.Errorf("failed to record sync time: %w", err)
	}

	entry := log.WithFields(logrus.Fields{
		"added":         result.Added,
		"duplicates":    result.Duplicates,
		"media_scanned": result.MediaScanned,
	})
	if result.Complete() {
		entry.Info("comment sync finished")
	} else {
		entry.WithFields(logrus.Fields{
			"media_failures":   len(result.MediaFailures),
			"comment_failures": result.CommentFailures,
		}).Warn("comment sync finished with failures")
	}
	return result, nil
}

func (p *SyncPoller) syncMedia(ctx context.Context, log *logrus.Entry, account *dbmysql.InstagramAccount, mediaID string, result *SyncResult) {
	comments, err := p.graph.ListComments(ctx, account.AccessToken, mediaID)
	if err != nil {
		log.WithError(err).WithField("media_id", mediaID).Warn("failed to list comments")
		result.MediaFailures = append(result.MediaFailures, MediaFailure{MediaID: mediaID, Err: err})
		return
	}

	for _, c := range comments {
		// polled comments carry no threading information
		c.MediaID = mediaID
		c.ParentID = ""

		inserted, err := p.ingestor.Ingest(ctx, c, account)
		switch {
		case err != nil:
			log.WithError(err).WithField("comment_id", c.ID).Warn("failed to ingest comment")
			result.CommentFailures++
		case inserted:
			result.Added++
		default:
			result.Duplicates++
		}
	}
}
