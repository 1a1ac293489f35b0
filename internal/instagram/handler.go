package instagram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/config"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
)

const maxWebhookBody = 1 << 20

type LinkService interface {
	BuildAuthorizationURL(brandID, userID uint) (string, error)
	CompleteLink(ctx context.Context, code, state string) (*dbmysql.InstagramAccount, error)
	ConnectedAccount(ctx context.Context, brandID uint) (*dbmysql.InstagramAccount, error)
	Disconnect(ctx context.Context, brandID uint) error
}

type WebhookService interface {
	VerifySubscription(mode, token, challenge string) (string, error)
	HandleEvent(ctx context.Context, payload []byte) (*WebhookResult, error)
}

type SyncService interface {
	SyncComments(ctx context.Context, brandID uint) (*SyncResult, error)
}

type ReplyService interface {
	Reply(ctx context.Context, commentID, brandID, userID uint, text string) (string, error)
}

type InboxService interface {
	ListComments(ctx context.Context, brandID uint, filter CommentFilter) (*CommentPage, error)
	GetComment(ctx context.Context, commentID, brandID uint) (*CommentDetail, error)
}

// Handler maps the HTTP API onto the integration services.
type Handler struct {
	linker      LinkService
	webhooks    WebhookService
	poller      SyncService
	replies     ReplyService
	inbox       InboxService
	frontendURL string
	log         *logrus.Entry
}

func NewHandler(
	cfg *config.Config,
	linker LinkService,
	webhooks WebhookService,
	poller SyncService,
	replies ReplyService,
	inbox InboxService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		linker:      linker,
		webhooks:    webhooks,
		poller:      poller,
		replies:     replies,
		inbox:       inbox,
		frontendURL: cfg.Server.FrontendURL,
		log:         logger.WithField("module", "handler"),
	}
}

// RegisterRoutes mounts the API under /api/v1. auth guards the brand-staff endpoints.
func (h *Handler) RegisterRoutes(r *mux.Router, auth func(http.Handler) http.Handler) {
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", h.health).Methods(http.MethodGet)
	api.HandleFunc("/webhooks/instagram", h.verifyWebhook).Methods(http.MethodGet)
	api.HandleFunc("/webhooks/instagram", h.receiveWebhook).Methods(http.MethodPost)
	api.HandleFunc("/instagram/callback", h.callback).Methods(http.MethodGet)

	protected := func(fn http.HandlerFunc) http.Handler {
		return auth(fn)
	}
	api.Handle("/instagram/connect-url", protected(h.connectURL)).Methods(http.MethodGet)
	api.Handle("/instagram/account", protected(h.account)).Methods(http.MethodGet)
	api.Handle("/instagram/disconnect", protected(h.disconnect)).Methods(http.MethodPost)
	api.Handle("/comments/sync", protected(h.sync)).Methods(http.MethodPost)
	api.Handle("/comments", protected(h.listComments)).Methods(http.MethodGet)
	api.Handle("/comments/{commentID:[0-9]+}", protected(h.getComment)).Methods(http.MethodGet)
	api.Handle("/comments/{commentID:[0-9]+}/reply", protected(h.reply)).Methods(http.MethodPost)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) verifyWebhook(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	challenge, err := h.webhooks.VerifySubscription(q.Get("hub.mode"), q.Get("hub.verify_token"), q.Get("hub.challenge"))
	if err != nil {
		h.log.WithField("mode", q.Get("hub.mode")).Warn("webhook verification rejected")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, challenge)
}

func (h *Handler) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		h.writeError(w, common.ErrMalformedPayload)
		return
	}

	if _, err := h.webhooks.HandleEvent(r.Context(), payload); err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "EVENT_RECEIVED")
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code := q.Get("code")
	if code == "" {
		h.redirect(w, r, url.Values{"error": {"no_code"}})
		return
	}

	account, err := h.linker.CompleteLink(r.Context(), code, q.Get("state"))
	if err != nil {
		h.log.WithError(err).Warn("instagram link failed")
		h.redirect(w, r, url.Values{"error": {common.ErrorCode(err)}})
		return
	}

	h.log.WithField("account_id", account.ID).Debug("instagram link completed")
	h.redirect(w, r, url.Values{"success": {"true"}})
}

func (h *Handler) connectURL(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	authURL, err := h.linker.BuildAuthorizationURL(claims.BrandID, claims.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"auth_url": authURL})
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	account, err := h.linker.ConnectedAccount(r.Context(), claims.BrandID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, account)
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	if err := h.linker.Disconnect(r.Context(), claims.BrandID); err != nil {
		h.writeError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Instagram account disconnected"})
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	result, err := h.poller.SyncComments(r.Context(), claims.BrandID)
	if err != nil && result == nil {
		h.writeError(w, err)
		return
	}
	if err != nil {
		// partial result still goes back to the caller
		h.log.WithError(err).WithField("brand_id", claims.BrandID).Warn("sync finished with error")
	}

	mediaFailures := make([]string, 0, len(result.MediaFailures))
	for _, f := range result.MediaFailures {
		mediaFailures = append(mediaFailures, f.MediaID)
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"added":            result.Added,
		"duplicates":       result.Duplicates,
		"media_scanned":    result.MediaScanned,
		"media_failures":   mediaFailures,
		"comment_failures": result.CommentFailures,
		"complete":         result.Complete(),
		"synced_at":        result.SyncedAt,
	})
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	status, err := common.ParseCommentStatus(q.Get("status"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	limit, err := intQuery(q, "limit")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "limit must be a number")
		return
	}
	offset, err := intQuery(q, "offset")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "offset must be a number")
		return
	}

	page, err := h.inbox.ListComments(r.Context(), claims.BrandID, CommentFilter{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	commentID, ok := h.commentID(w, r)
	if !ok {
		return
	}

	detail, err := h.inbox.GetComment(r.Context(), commentID, claims.BrandID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, detail)
}

type replyRequest struct {
	Text string `json:"text"`
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	commentID, ok := h.commentID(w, r)
	if !ok {
		return
	}

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	replyID, err := h.replies.Reply(r.Context(), commentID, claims.BrandID, claims.UserID, req.Text)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"reply_id": replyID})
}

func (h *Handler) claims(w http.ResponseWriter, r *http.Request) (*common.Claims, bool) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok || claims.BrandID == 0 {
		common.WriteError(w, http.StatusUnauthorized, "unauthorized", "brand context required")
		return nil, false
	}
	return claims, true
}

func (h *Handler) commentID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["commentID"], 10, 64)
	if err != nil || id == 0 {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid comment id")
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := common.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed")
		common.WriteError(w, status, common.ErrorCode(err), "internal server error")
		return
	}
	common.WriteError(w, status, common.ErrorCode(err), err.Error())
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, params url.Values) {
	http.Redirect(w, r, h.frontendURL+"/instagram/connect?"+params.Encode(), http.StatusFound)
}

func intQuery(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
