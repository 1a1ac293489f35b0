package instagram

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vanshaj8/Promptly/internal/cache"
	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
	"github.com/vanshaj8/Promptly/internal/graph"
)

// ---- testify mock for the Graph API ----

type MockGraphClient struct {
	mock.Mock
}

func (m *MockGraphClient) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockGraphClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGraphClient) ListPages(ctx context.Context, userToken string) ([]graph.Page, error) {
	args := m.Called(ctx, userToken)
	pages, _ := args.Get(0).([]graph.Page)
	return pages, args.Error(1)
}

func (m *MockGraphClient) GetBusinessAccount(ctx context.Context, pageToken, igID string) (*graph.BusinessAccount, error) {
	args := m.Called(ctx, pageToken, igID)
	account, _ := args.Get(0).(*graph.BusinessAccount)
	return account, args.Error(1)
}

func (m *MockGraphClient) ListMedia(ctx context.Context, token, igID string) ([]graph.Media, error) {
	args := m.Called(ctx, token, igID)
	media, _ := args.Get(0).([]graph.Media)
	return media, args.Error(1)
}

func (m *MockGraphClient) ListComments(ctx context.Context, token, mediaID string) ([]graph.Comment, error) {
	args := m.Called(ctx, token, mediaID)
	comments, _ := args.Get(0).([]graph.Comment)
	return comments, args.Error(1)
}

func (m *MockGraphClient) PostReply(ctx context.Context, token, commentID, message string) (string, error) {
	args := m.Called(ctx, token, commentID, message)
	return args.String(0), args.Error(1)
}

// ---- in-memory stores, enforcing the same unique keys as the schema ----

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uint]*dbmysql.InstagramAccount
	next     uint
}

func newFakeAccountRepo(accounts ...*dbmysql.InstagramAccount) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: map[uint]*dbmysql.InstagramAccount{}, next: 1}
	for _, a := range accounts {
		if a.ID == 0 {
			a.ID = r.next
		}
		if a.ID >= r.next {
			r.next = a.ID + 1
		}
		cp := *a
		r.accounts[a.ID] = &cp
	}
	return r
}

func (r *fakeAccountRepo) FindByExternalID(ctx context.Context, externalID string) (*dbmysql.InstagramAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.InstagramBusinessAccountID == externalID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("instagram account %s: %w", externalID, common.ErrNotFound)
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id uint) (*dbmysql.InstagramAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("instagram account %d: %w", id, common.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) FindConnectedByBrand(ctx context.Context, brandID uint) (*dbmysql.InstagramAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *dbmysql.InstagramAccount
	for _, a := range r.accounts {
		if a.BrandID == brandID && a.IsConnected && (found == nil || a.ID > found.ID) {
			found = a
		}
	}
	if found == nil {
		return nil, fmt.Errorf("brand %d: %w", brandID, common.ErrNotFound)
	}
	cp := *found
	return &cp, nil
}

func (r *fakeAccountRepo) ListConnected(ctx context.Context) ([]*dbmysql.InstagramAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*dbmysql.InstagramAccount
	for _, a := range r.accounts {
		if a.IsConnected {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BrandID != out[j].BrandID {
			return out[i].BrandID < out[j].BrandID
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *dbmysql.InstagramAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.InstagramBusinessAccountID == account.InstagramBusinessAccountID {
			return fmt.Errorf("instagram account %s: %w", account.InstagramBusinessAccountID, common.ErrDuplicate)
		}
	}
	account.ID = r.next
	r.next++
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) Retarget(ctx context.Context, account *dbmysql.InstagramAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[account.ID]
	if !ok {
		return common.ErrNotFound
	}
	a.BrandID = account.BrandID
	a.PageID = account.PageID
	a.AccessToken = account.AccessToken
	a.Username = account.Username
	a.ProfilePictureURL = account.ProfilePictureURL
	a.IsConnected = account.IsConnected
	return nil
}

func (r *fakeAccountRepo) DisconnectBrand(ctx context.Context, brandID uint) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uint
	for _, a := range r.accounts {
		if a.BrandID == brandID && a.IsConnected {
			a.IsConnected = false
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

func (r *fakeAccountRepo) DisconnectOthers(ctx context.Context, brandID, keepID uint) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uint
	for _, a := range r.accounts {
		if a.BrandID == brandID && a.IsConnected && a.ID != keepID {
			a.IsConnected = false
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

func (r *fakeAccountRepo) UpdateLastSync(ctx context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return common.ErrNotFound
	}
	t := at
	a.LastSyncAt = &t
	return nil
}

func (r *fakeAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uint]*dbmysql.Comment
	next     uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*dbmysql.Comment{}, next: 1}
}

func (r *fakeCommentRepo) ExistsByExternalID(ctx context.Context, commentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.CommentID == commentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *dbmysql.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.CommentID == comment.CommentID {
			return fmt.Errorf("comment %s: %w", comment.CommentID, common.ErrDuplicate)
		}
	}
	comment.ID = r.next
	r.next++
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) FindByIDAndBrand(ctx context.Context, id, brandID uint) (*dbmysql.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok || c.BrandID != brandID {
		return nil, fmt.Errorf("comment %d: %w", id, common.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) UpdateStatus(ctx context.Context, id uint, status common.CommentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return fmt.Errorf("comment %d: %w", id, common.ErrNotFound)
	}
	c.Status = status
	return nil
}

func (r *fakeCommentRepo) ListByBrand(ctx context.Context, brandID uint, status common.CommentStatus, limit, offset int) ([]*dbmysql.Comment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*dbmysql.Comment
	for _, c := range r.comments {
		if c.BrandID == brandID && (status == "" || c.Status == status) {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
	total := int64(len(all))
	if offset >= len(all) {
		return []*dbmysql.Comment{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeCommentRepo) byExternalID(commentID string) *dbmysql.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.CommentID == commentID {
			cp := *c
			return &cp
		}
	}
	return nil
}

func (r *fakeCommentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments)
}

type fakeReplyRepo struct {
	mu      sync.Mutex
	replies []*dbmysql.Reply
}

func (r *fakeReplyRepo) Create(ctx context.Context, reply *dbmysql.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.replies {
		if existing.ReplyID == reply.ReplyID {
			return fmt.Errorf("reply %s: %w", reply.ReplyID, common.ErrDuplicate)
		}
	}
	reply.ID = uint(len(r.replies) + 1)
	cp := *reply
	r.replies = append(r.replies, &cp)
	return nil
}

func (r *fakeReplyRepo) ListByComment(ctx context.Context, commentID uint) ([]*dbmysql.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*dbmysql.Reply
	for _, reply := range r.replies {
		if reply.CommentID == commentID {
			cp := *reply
			out = append(out, &cp)
		}
	}
	return out, nil
}

// passthroughCache always calls the loader and records invalidations.
type passthroughCache struct {
	mu          sync.Mutex
	invalidated []uint
}

func (c *passthroughCache) Profile(ctx context.Context, accountID uint, load cache.Loader) (*cache.AccountProfile, error) {
	return load(ctx, accountID)
}

func (c *passthroughCache) Invalidate(ctx context.Context, accountID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, accountID)
}
