package dbmysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vanshaj8/Promptly/internal/common"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByExternalID(ctx context.Context, externalID string) (*InstagramAccount, error) {
	var account InstagramAccount
	err := r.db.WithContext(ctx).
		Where("instagram_business_account_id = ?", externalID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("instagram account %s: %w", externalID, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get instagram account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*InstagramAccount, error) {
	var account InstagramAccount
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("instagram account %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get instagram account: %w", err)
	}
	return &account, nil
}

// FindConnectedByBrand returns the brand's connected account. Linking disconnects the
// brand's other rows, so the ordering only matters for rows left by older data.
func (r *AccountRepository) FindConnectedByBrand(ctx context.Context, brandID uint) (*InstagramAccount, error) {
	var account InstagramAccount
	err := r.db.WithContext(ctx).
		Where("brand_id = ? AND is_connected = ?", brandID, true).
		Order("created_at DESC").
		Order("id DESC").
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand %d: %w", brandID, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get connected account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) ListConnected(ctx context.Context) ([]*InstagramAccount, error) {
	var accounts []*InstagramAccount
	err := r.db.WithContext(ctx).
		Where("is_connected = ?", true).
		Order("brand_id ASC").
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list connected accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *InstagramAccount) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if IsDuplicateKey(err) {
			return fmt.Errorf("instagram account %s: %w", account.InstagramBusinessAccountID, common.ErrDuplicate)
		}
		return fmt.Errorf("failed to create instagram account: %w", err)
	}
	return nil
}

// Retarget points an existing row at the brand, page and token held by account.
func (r *AccountRepository) Retarget(ctx context.Context, account *InstagramAccount) error {
	result := r.db.WithContext(ctx).
		Model(&InstagramAccount{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"brand_id":            account.BrandID,
			"page_id":             account.PageID,
			"access_token":        account.AccessToken,
			"username":            account.Username,
			"profile_picture_url": account.ProfilePictureURL,
			"is_connected":        account.IsConnected,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update instagram account: %w", result.Error)
	}
	return nil
}

// DisconnectBrand soft-disables every connected account of the brand and returns their ids.
func (r *AccountRepository) DisconnectBrand(ctx context.Context, brandID uint) ([]uint, error) {
	return r.disconnect(ctx, r.db.WithContext(ctx).Where("brand_id = ? AND is_connected = ?", brandID, true))
}

// DisconnectOthers soft-disables the brand's connected accounts other than keepID.
func (r *AccountRepository) DisconnectOthers(ctx context.Context, brandID, keepID uint) ([]uint, error) {
	return r.disconnect(ctx, r.db.WithContext(ctx).Where("brand_id = ? AND is_connected = ? AND id <> ?", brandID, true, keepID))
}

func (r *AccountRepository) disconnect(ctx context.Context, scope *gorm.DB) ([]uint, error) {
	var ids []uint
	if err := scope.Model(&InstagramAccount{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list brand accounts: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	err := r.db.WithContext(ctx).
		Model(&InstagramAccount{}).
		Where("id IN ?", ids).
		Update("is_connected", false).Error
	if err != nil {
		return nil, fmt.Errorf("failed to disconnect accounts: %w", err)
	}
	return ids, nil
}

func (r *AccountRepository) UpdateLastSync(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&InstagramAccount{}).
		Where("id = ?", id).
		Update("last_sync_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to update last sync: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("instagram account %d: %w", id, common.ErrNotFound)
	}
	return nil
}
