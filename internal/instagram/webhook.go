package instagram

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Jeffail/gabs/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/config"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
	"github.com/vanshaj8/Promptly/internal/graph"
)

const subscribeMode = "subscribe"

// event batches read from every entry
var eventFields = []string{"comments", "mentions"}

// WebhookResult counts what a single delivery produced.
type WebhookResult struct {
	Entries    int `json:"entries"`
	Skipped    int `json:"skipped"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

type WebhookReceiver struct {
	verifyToken string
	accounts    AccountRepository
	ingestor    *CommentIngestor
	archive     DeliveryArchiver
	now         func() time.Time
	log         *logrus.Entry
}

func NewWebhookReceiver(
	cfg *config.Config,
	accounts AccountRepository,
	ingestor *CommentIngestor,
	archive DeliveryArchiver,
	logger *logrus.Logger,
) *WebhookReceiver {
	return &WebhookReceiver{
		verifyToken: cfg.Webhook.VerifyToken,
		accounts:    accounts,
		ingestor:    ingestor,
		archive:     archive,
		now:         time.Now,
		log:         logger.WithField("module", "webhook"),
	}
}

// VerifySubscription answers the hub handshake and returns the challenge to echo.
func (w *WebhookReceiver) VerifySubscription(mode, token, challenge string) (string, error) {
	if mode != subscribeMode || w.verifyToken == "" {
		return "", common.ErrVerificationFailed
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(w.verifyToken)) != 1 {
		return "", common.ErrVerificationFailed
	}
	return challenge, nil
}

// HandleEvent ingests one delivery. Only an unreadable body is an error; every
// entry and event is processed on its own and failures are counted.
func (w *WebhookReceiver) HandleEvent(ctx context.Context, payload []byte) (*WebhookResult, error) {
	return w.handle(ctx, payload, true)
}

// Replay processes an already archived delivery without archiving it again.
func (w *WebhookReceiver) Replay(ctx context.Context, payload []byte) (*WebhookResult, error) {
	return w.handle(ctx, payload, false)
}

func (w *WebhookReceiver) handle(ctx context.Context, payload []byte, archive bool) (*WebhookResult, error) {
	body, err := parsePayload(payload)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	log := w.log.WithField("request_id", requestID)
	if archive {
		w.archiveDelivery(ctx, log, requestID, payload)
	} else {
		log = log.WithField("replay", true)
	}

	result := &WebhookResult{}
	for _, entry := range arrayChildren(body.Path("entry")) {
		result.Entries++
		w.handleEntry(ctx, log, entry, result)
	}

	log.WithFields(logrus.Fields{
		"entries":    result.Entries,
		"skipped":    result.Skipped,
		"inserted":   result.Inserted,
		"duplicates": result.Duplicates,
		"failed":     result.Failed,
	}).Info("webhook delivery processed")
	return result, nil
}

func (w *WebhookReceiver) handleEntry(ctx context.Context, log *logrus.Entry, entry *gabs.Container, result *WebhookResult) {
	externalID := stringAt(entry, "id")
	if externalID == "" {
		log.Warn("webhook entry without account id")
		result.Failed++
		return
	}

	account, err := w.accounts.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.WithField("instagram_account", externalID).Debug("skipping entry for unknown account")
			result.Skipped++
			return
		}
		log.WithError(err).WithField("instagram_account", externalID).Error("account lookup failed")
		result.Failed++
		return
	}
	if !account.IsConnected {
		log.WithField("account_id", account.ID).Debug("skipping entry for disconnected account")
		result.Skipped++
		return
	}

	for _, field := range eventFields {
		for _, item := range arrayChildren(entry.Search(field, "data")) {
			w.ingestEvent(ctx, log, item, account, result)
		}
	}
}

func (w *WebhookReceiver) ingestEvent(ctx context.Context, log *logrus.Entry, item *gabs.Container, account *dbmysql.InstagramAccount, result *WebhookResult) {
	raw := commentFromEvent(item)
	inserted, err := w.ingestor.Ingest(ctx, raw, account)
	switch {
	case err != nil:
		log.WithError(err).WithField("comment_id", raw.ID).Error("webhook comment ingest failed")
		result.Failed++
	case inserted:
		result.Inserted++
	default:
		result.Duplicates++
	}
}

func (w *WebhookReceiver) archiveDelivery(ctx context.Context, log *logrus.Entry, requestID string, payload []byte) {
	if w.archive == nil {
		return
	}
	if err := w.archive.Archive(ctx, requestID, payload, w.now()); err != nil {
		log.WithError(err).Warn("failed to archive webhook delivery")
	}
}

// parsePayload keeps numbers as json.Number so 17-digit ids survive decoding.
func parsePayload(payload []byte) (*gabs.Container, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	body, err := gabs.ParseJSONDecoder(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedPayload, err)
	}
	if _, ok := body.Data().(map[string]interface{}); !ok {
		return nil, fmt.Errorf("%w: body is not an object", common.ErrMalformedPayload)
	}
	return body, nil
}

func commentFromEvent(item *gabs.Container) graph.Comment {
	mediaID := stringAt(item, "media_id")
	if mediaID == "" {
		mediaID = stringAt(item, "media", "id")
	}

	return graph.Comment{
		ID:        stringAt(item, "id"),
		Text:      stringAt(item, "text"),
		Username:  stringAt(item, "username"),
		LikeCount: intAt(item, "like_count"),
		Timestamp: stringAt(item, "timestamp"),
		From: graph.Author{
			ID:       stringAt(item, "from", "id"),
			Username: stringAt(item, "from", "username"),
		},
		MediaID:  mediaID,
		ParentID: stringAt(item, "parent_id"),
	}
}

// arrayChildren returns the elements of an array node and nothing for any other shape.
func arrayChildren(c *gabs.Container) []*gabs.Container {
	if c == nil {
		return nil
	}
	if _, ok := c.Data().([]interface{}); !ok {
		return nil
	}
	return c.Children()
}

// stringAt reads a scalar as a string. Ids sometimes arrive as JSON numbers.
func stringAt(c *gabs.Container, path ...string) string {
	switch v := c.Search(path...).Data().(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func intAt(c *gabs.Container, path ...string) int {
	switch v := c.Search(path...).Data().(type) {
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}
