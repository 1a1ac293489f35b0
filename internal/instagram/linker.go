package instagram

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/config"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
	"github.com/vanshaj8/Promptly/internal/graph"
)

// linkState is carried through the OAuth round trip.
type linkState struct {
	BrandID uint `json:"brand_id"`
	UserID  uint `json:"user_id"`
}

type AccountLinker struct {
	accounts    AccountRepository
	graph       GraphClient
	profiles    ProfileCache
	stateSecret []byte
	log         *logrus.Entry
}

func NewAccountLinker(cfg *config.Config, accounts AccountRepository, client GraphClient, profiles ProfileCache, logger *logrus.Logger) *AccountLinker {
	var secret []byte
	if cfg.OAuth.StateSecret != "" {
		secret = []byte(cfg.OAuth.StateSecret)
	}
	return &AccountLinker{
		accounts:    accounts,
		graph:       client,
		profiles:    profiles,
		stateSecret: secret,
		log:         logger.WithField("module", "linker"),
	}
}

// BuildAuthorizationURL returns the Meta login dialog URL for a brand.
func (l *AccountLinker) BuildAuthorizationURL(brandID, userID uint) (string, error) {
	if brandID == 0 {
		return "", fmt.Errorf("%w: brand id is required", common.ErrInvalidState)
	}

	state, err := l.encodeState(linkState{BrandID: brandID, UserID: userID})
	if err != nil {
		return "", err
	}
	return l.graph.AuthCodeURL(state), nil
}

// CompleteLink finishes the OAuth callback and stores the connected account.
func (l *AccountLinker) CompleteLink(ctx context.Context, code, state string) (*dbmysql.InstagramAccount, error) {
	st, err := l.decodeState(state)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", common.ErrTokenExchange)
	}

	userToken, err := l.graph.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTokenExchange, err)
	}

	pages, err := l.graph.ListPages(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	page := firstLinkedPage(pages)
	if page == nil {
		return nil, common.ErrNoInstagramAccount
	}
	igID := page.BusinessAccountID()

	profile, err := l.graph.GetBusinessAccount(ctx, page.AccessToken, igID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instagram profile: %w", err)
	}

	account := &dbmysql.InstagramAccount{
		BrandID:                    st.BrandID,
		InstagramBusinessAccountID: igID,
		PageID:                     page.ID,
		AccessToken:                page.AccessToken,
		Username:                   profile.Username,
		ProfilePictureURL:          profile.ProfilePictureURL,
		IsConnected:                true,
	}
	if err := l.upsert(ctx, account); err != nil {
		return nil, err
	}
	l.profiles.Invalidate(ctx, account.ID)

	// a brand keeps one connected account; an earlier link loses to this one
	previous, err := l.accounts.DisconnectOthers(ctx, st.BrandID, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to disconnect previous accounts: %w", err)
	}
	for _, id := range previous {
		l.profiles.Invalidate(ctx, id)
	}

	l.log.WithFields(logrus.Fields{
		"brand_id":   st.BrandID,
		"user_id":    st.UserID,
		"account_id": account.ID,
		"username":   account.Username,
		"replaced":   len(previous),
	}).Info("instagram account linked")
	return account, nil
}

// ConnectedAccount returns the brand's active account.
func (l *AccountLinker) ConnectedAccount(ctx context.Context, brandID uint) (*dbmysql.InstagramAccount, error) {
	account, err := l.accounts.FindConnectedByBrand(ctx, brandID)
	if err != nil {
		return nil, noAccount(err)
	}
	return account, nil
}

func noAccount(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNoAccountConnected
	}
	return err
}

// Disconnect soft-disables every account of the brand.
func (l *AccountLinker) Disconnect(ctx context.Context, brandID uint) error {
	ids, err := l.accounts.DisconnectBrand(ctx, brandID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return common.ErrNoAccountConnected
	}

	for _, id := range ids {
		l.profiles.Invalidate(ctx, id)
	}
	l.log.WithFields(logrus.Fields{"brand_id": brandID, "accounts": len(ids)}).Info("instagram account disconnected")
	return nil
}

// upsert keys on the external account id. A concurrent create that loses the
// unique-key race falls back to re-targeting the winner's row.
func (l *AccountLinker) upsert(ctx context.Context, account *dbmysql.InstagramAccount) error {
	existing, err := l.accounts.FindByExternalID(ctx, account.InstagramBusinessAccountID)
	switch {
	case err == nil:
		return l.retarget(ctx, existing, account)
	case !errors.Is(err, common.ErrNotFound):
		return err
	}

	err = l.accounts.Create(ctx, account)
	if !errors.Is(err, common.ErrDuplicate) {
		return err
	}

	existing, err = l.accounts.FindByExternalID(ctx, account.InstagramBusinessAccountID)
	if err != nil {
		return fmt.Errorf("failed to re-read instagram account: %w", err)
	}
	return l.retarget(ctx, existing, account)
}

func (l *AccountLinker) retarget(ctx context.Context, existing, account *dbmysql.InstagramAccount) error {
	account.ID = existing.ID
	account.CreatedAt = existing.CreatedAt
	account.LastSyncAt = existing.LastSyncAt
	if existing.BrandID != account.BrandID {
		l.log.WithFields(logrus.Fields{
			"account_id": existing.ID,
			"from_brand": existing.BrandID,
			"to_brand":   account.BrandID,
		}).Warn("instagram account moved to another brand")
	}
	return l.accounts.Retarget(ctx, account)
}

func firstLinkedPage(pages []graph.Page) *graph.Page {
	for i := range pages {
		if pages[i].BusinessAccountID() != "" {
			return &pages[i]
		}
	}
	return nil
}

func (l *AccountLinker) encodeState(st linkState) (string, error) {
	raw, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}

	payload := base64.StdEncoding.EncodeToString(raw)
	if l.stateSecret == nil {
		return payload, nil
	}
	return payload + "." + l.sign(payload), nil
}

func (l *AccountLinker) decodeState(state string) (*linkState, error) {
	if state == "" {
		return nil, fmt.Errorf("%w: missing state", common.ErrInvalidState)
	}

	payload := state
	if l.stateSecret != nil {
		var sig string
		var ok bool
		payload, sig, ok = strings.Cut(state, ".")
		if !ok {
			return nil, fmt.Errorf("%w: unsigned state", common.ErrInvalidState)
		}
		if !hmac.Equal([]byte(sig), []byte(l.sign(payload))) {
			return nil, fmt.Errorf("%w: signature mismatch", common.ErrInvalidState)
		}
	}

	raw, err := decodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidState, err)
	}

	var st linkState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidState, err)
	}
	if st.BrandID == 0 {
		return nil, fmt.Errorf("%w: brand id missing", common.ErrInvalidState)
	}
	return &st, nil
}

func (l *AccountLinker) sign(payload string) string {
	mac := hmac.New(sha256.New, l.stateSecret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// decodeBase64 accepts padded and unpadded, standard and URL-safe alphabets.
// Query strings sometimes turn '+' into ' ' on the way back.
func decodeBase64(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, " ", "+")
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	}

	var err error
	for _, enc := range encodings {
		var raw []byte
		if raw, err = enc.DecodeString(s); err == nil {
			return raw, nil
		}
	}
	return nil, err
}
