package dbmysql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vanshaj8/Promptly/internal/common"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

var accountColumns = []string{"id", "brand_id", "instagram_business_account_id", "page_id", "access_token", "username", "is_connected"}

func TestAccountRepository_FindByExternalID(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM `instagram_accounts` WHERE instagram_business_account_id = ?")).
					WillReturnRows(sqlmock.NewRows(accountColumns).
						AddRow(1, 3, "17841400000000001", "page-1", "tok", "acme", true))
			},
		},
		{
			name: "missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM `instagram_accounts` WHERE instagram_business_account_id = ?")).
					WillReturnRows(sqlmock.NewRows(accountColumns))
			},
			wantErr: common.ErrNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `instagram_accounts`")).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tc.mockSetup(mock)

			repo := NewAccountRepository(db)
			account, err := repo.FindByExternalID(context.Background(), "17841400000000001")

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, account)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(3), account.BrandID)
				assert.Equal(t, "acme", account.Username)
				assert.True(t, account.IsConnected)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_FindConnectedByBrand(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `instagram_accounts` WHERE brand_id = ? AND is_connected = ? ORDER BY created_at DESC,id DESC")).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(9, 4, "17841400000000009", "page-9", "tok", "newest", true))

	account, err := NewAccountRepository(db).FindConnectedByBrand(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, uint(9), account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "successful create",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `instagram_accounts`")).
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "duplicate external id",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `instagram_accounts`")).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
				mock.ExpectRollback()
			},
			wantErr: common.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tc.mockSetup(mock)

			account := &InstagramAccount{
				BrandID:                    3,
				InstagramBusinessAccountID: "17841400000000001",
				PageID:                     "page-1",
				AccessToken:                "tok",
				IsConnected:                true,
			}
			err := NewAccountRepository(db).Create(context.Background(), account)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(12), account.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_DisconnectBrand(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT `id` FROM `instagram_accounts` WHERE brand_id = ? AND is_connected = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(4))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `instagram_accounts` SET `is_connected`=?")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	ids, err := NewAccountRepository(db).DisconnectBrand(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Retarget(t *testing.T) {
	account := &InstagramAccount{
		ID: 11, BrandID: 7, PageID: "page-1", AccessToken: "page-token",
		Username: "acme", ProfilePictureURL: "https://cdn.test/a.jpg", IsConnected: true,
	}

	tests := []struct {
		name        string
		execErr     error
		errContains string
	}{
		{name: "row re-pointed"},
		{name: "update fails", execErr: errors.New("lock wait timeout"), errContains: "lock wait timeout"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectBegin()
			exec := mock.ExpectExec(regexp.QuoteMeta(
				"UPDATE `instagram_accounts` SET `access_token`=?,`brand_id`=?,`is_connected`=?,`page_id`=?,`profile_picture_url`=?,`username`=?,`updated_at`=? WHERE id = ?")).
				WithArgs("page-token", uint(7), true, "page-1", "https://cdn.test/a.jpg", "acme", sqlmock.AnyArg(), uint(11))
			if tc.execErr != nil {
				exec.WillReturnError(tc.execErr)
				mock.ExpectRollback()
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			}

			err := NewAccountRepository(db).Retarget(context.Background(), account)
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_DisconnectOthers(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT `id` FROM `instagram_accounts` WHERE brand_id = ? AND is_connected = ? AND id <> ?")).
		WithArgs(uint(7), true, uint(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `instagram_accounts` SET `is_connected`=?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ids, err := NewAccountRepository(db).DisconnectOthers(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_DisconnectBrand_NothingConnected(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `instagram_accounts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := NewAccountRepository(db).DisconnectBrand(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateLastSync(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "account gone", affected: 0, wantErr: common.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE `instagram_accounts` SET `last_sync_at`=?")).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))
			mock.ExpectCommit()

			err := NewAccountRepository(db).UpdateLastSync(context.Background(), 5, time.Now())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommentRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "successful create",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comments`")).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "lost the race on comment_id",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comments`")).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'c-1' for key 'comment_id'"})
				mock.ExpectRollback()
			},
			wantErr: common.ErrDuplicate,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comments`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tc.mockSetup(mock)

			comment := &Comment{
				BrandID:            1,
				InstagramAccountID: 2,
				CommentID:          "c-1",
				MediaID:            "m-1",
				Text:               "love it",
				Timestamp:          time.Now(),
				Status:             common.CommentStatusOpen,
			}
			err := NewCommentRepository(db).Create(context.Background(), comment)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantErr == assert.AnError {
					assert.NotErrorIs(t, err, common.ErrDuplicate)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), comment.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommentRepository_ExistsByExternalID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comments` WHERE comment_id = ?")).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comments` WHERE comment_id = ?")).
		WithArgs("c-2").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	repo := NewCommentRepository(db)

	exists, err := repo.ExistsByExternalID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByExternalID(context.Background(), "c-2")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_FindByIDAndBrand(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	cols := []string{"id", "brand_id", "instagram_account_id", "comment_id", "text", "status"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE id = ? AND brand_id = ?")).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(5, 1, 2, "c-5", "hello", "OPEN"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE id = ? AND brand_id = ?")).
		WillReturnRows(sqlmock.NewRows(cols))

	repo := NewCommentRepository(db)

	comment, err := repo.FindByIDAndBrand(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "c-5", comment.CommentID)
	assert.Equal(t, common.CommentStatusOpen, comment.Status)

	// same id under another brand
	_, err = repo.FindByIDAndBrand(context.Background(), 5, 2)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "status updated", affected: 1},
		{name: "comment missing", affected: 0, wantErr: common.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE `comments` SET `status`=?")).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))
			mock.ExpectCommit()

			err := NewCommentRepository(db).UpdateStatus(context.Background(), 5, common.CommentStatusReplied)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommentRepository_ListByBrand(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comments` WHERE brand_id = ? AND status = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `comments` WHERE brand_id = ? AND status = ? ORDER BY timestamp DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand_id", "comment_id", "status"}).
			AddRow(3, 1, "c-3", "OPEN").
			AddRow(2, 1, "c-2", "OPEN"))

	comments, total, err := NewCommentRepository(db).
		ListByBrand(context.Background(), 1, common.CommentStatusOpen, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, comments, 2)
	assert.Equal(t, "c-3", comments[0].CommentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `replies`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `replies` WHERE comment_id = ? ORDER BY sent_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "comment_id", "brand_id", "user_id", "reply_id", "text"}).
			AddRow(1, 5, 1, 7, "r-1", "thanks!"))

	repo := NewReplyRepository(db)
	reply := &Reply{CommentID: 5, BrandID: 1, UserID: 7, ReplyID: "r-1", Text: "thanks!", SentAt: time.Now()}
	require.NoError(t, repo.Create(context.Background(), reply))
	assert.Equal(t, uint(1), reply.ID)

	replies, err := repo.ListByComment(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "r-1", replies[0].ReplyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(&mysql.MySQLError{Number: 1062}))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicateKey(&mysql.MySQLError{Number: 1213}))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
	assert.False(t, IsDuplicateKey(nil))
}
