// Package graph talks to the Facebook Graph API on behalf of linked Instagram accounts.
// Every call is a single attempt bounded by the configured timeout; retry policy
// belongs to callers.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	fb "github.com/huandu/facebook/v2"
	"golang.org/x/oauth2"

	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/config"
)

const (
	DefaultAPIVersion = "v18.0"

	pageFields    = "id,name,access_token,instagram_business_account"
	profileFields = "username,profile_picture_url"
	commentFields = "id,text,username,like_count,timestamp,from"
	mediaPageSize = 25
)

// Scopes requested during account linking.
var Scopes = []string{
	"instagram_basic",
	"instagram_manage_comments",
	"pages_show_list",
	"pages_read_engagement",
}

// APIError is returned for any failed Graph call. It matches common.ErrExternalAPI.
type APIError struct {
	Op      string
	Code    int
	Type    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("graph %s: %s (type=%s code=%d)", e.Op, e.Message, e.Type, e.Code)
	}
	return fmt.Sprintf("graph %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() []error {
	return []error{common.ErrExternalAPI, e.Err}
}

func newAPIError(op string, err error) *APIError {
	apiErr := &APIError{Op: op, Err: err}
	var fbErr *fb.Error
	if errors.As(err, &fbErr) {
		apiErr.Code = fbErr.Code
		apiErr.Type = fbErr.Type
		apiErr.Message = fbErr.Message
	}
	return apiErr
}

type Client struct {
	app        *fb.App
	oauth      *oauth2.Config
	httpClient *http.Client
	version    string
}

func NewClient(cfg *config.Config) *Client {
	return newClient(cfg.Meta, &http.Client{Timeout: cfg.Meta.Timeout})
}

func newClient(meta config.MetaConfig, httpClient *http.Client) *Client {
	version := meta.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	return &Client{
		app: fb.New(meta.AppID, meta.AppSecret),
		oauth: &oauth2.Config{
			ClientID:     meta.AppID,
			ClientSecret: meta.AppSecret,
			RedirectURL:  meta.RedirectURI,
			// Meta expects the comma separated form
			Scopes: []string{strings.Join(Scopes, ",")},
			Endpoint: oauth2.Endpoint{
				AuthURL:   fmt.Sprintf("https://www.facebook.com/%s/dialog/oauth", version),
				TokenURL:  fmt.Sprintf("https://graph.facebook.com/%s/oauth/access_token", version),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
		version:    version,
	}
}

// AuthCodeURL is the Facebook login dialog URL carrying state.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for a user access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", newAPIError("exchange code", err)
	}
	return token.AccessToken, nil
}

func (c *Client) ListPages(ctx context.Context, userToken string) ([]Page, error) {
	res, err := c.get(ctx, "list pages", userToken, "/me/accounts", fb.Params{"fields": pageFields})
	if err != nil {
		return nil, err
	}

	var pages []Page
	if err := decodeData(res, &pages); err != nil {
		return nil, newAPIError("list pages", err)
	}
	return pages, nil
}

func (c *Client) GetBusinessAccount(ctx context.Context, pageToken, igID string) (*BusinessAccount, error) {
	res, err := c.get(ctx, "get business account", pageToken, "/"+igID, fb.Params{"fields": profileFields})
	if err != nil {
		return nil, err
	}

	var account BusinessAccount
	if err := res.Decode(&account); err != nil {
		return nil, newAPIError("get business account", err)
	}
	if account.ID == "" {
		account.ID = igID
	}
	return &account, nil
}

// ListMedia returns the first page of the account's media.
func (c *Client) ListMedia(ctx context.Context, token, igID string) ([]Media, error) {
	res, err := c.get(ctx, "list media", token, "/"+igID+"/media", fb.Params{
		"fields": "id",
		"limit":  mediaPageSize,
	})
	if err != nil {
		return nil, err
	}

	var media []Media
	if err := decodeData(res, &media); err != nil {
		return nil, newAPIError("list media", err)
	}
	return media, nil
}

// ListComments returns the first page of top-level comments on a media item.
func (c *Client) ListComments(ctx context.Context, token, mediaID string) ([]Comment, error) {
	res, err := c.get(ctx, "list comments", token, "/"+mediaID+"/comments", fb.Params{"fields": commentFields})
	if err != nil {
		return nil, err
	}

	var comments []Comment
	if err := decodeData(res, &comments); err != nil {
		return nil, newAPIError("list comments", err)
	}
	return comments, nil
}

// PostReply publishes a reply and returns the id Instagram assigned to it.
// An empty id with a nil error means the call went through without an id in the body.
func (c *Client) PostReply(ctx context.Context, token, commentID, message string) (string, error) {
	res, err := c.session(ctx, token).Post("/"+commentID+"/replies", fb.Params{"message": message})
	if err != nil {
		return "", newAPIError("post reply", err)
	}
	return stringField(res, "id"), nil
}

func (c *Client) session(ctx context.Context, token string) *fb.Session {
	session := c.app.Session(token)
	session.HttpClient = c.httpClient
	session.Version = c.version
	return session.WithContext(ctx)
}

func (c *Client) get(ctx context.Context, op, token, path string, params fb.Params) (fb.Result, error) {
	res, err := c.session(ctx, token).Get(path, params)
	if err != nil {
		return nil, newAPIError(op, err)
	}
	return res, nil
}

// decodeData decodes the "data" array of a list response. A missing array is a malformed body.
func decodeData(res fb.Result, v interface{}) error {
	if _, ok := res["data"]; !ok {
		return errors.New("response has no data field")
	}
	return res.DecodeField("data", v)
}

func stringField(res fb.Result, field string) string {
	switch v := res[field].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}
