package repositories

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"travelexplorer/internal/models/db_models"
)

type AccountRepository interface {
	// CreateWithProfile inserts the account and an empty profile in one
	// transaction, so a new account is never readable without its profile.
	CreateWithProfile(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindProfile(ctx context.Context, accountID string) (*db_models.Profile, error)
	UpdatePreferences(ctx context.Context, accountID string, prefs db_models.Preferences) (*db_models.Profile, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) CreateWithProfile(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile := account.Profile
		account.Profile = nil

		if err := tx.Create(account).Error; err != nil {
			return err
		}

		if profile == nil {
			profile = &db_models.Profile{}
		}
		profile.AccountID = account.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		account.Profile = profile
		return nil
	})
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).
		Preload("Profile").
		First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindProfile(ctx context.Context, accountID string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := a.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (a *accountRepository) UpdatePreferences(ctx context.Context, accountID string, prefs db_models.Preferences) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile, "account_id = ?", accountID).Error; err != nil {
			return err
		}
		profile.Preferences = datatypes.NewJSONType(prefs)
		return tx.Model(&profile).Update("preferences", profile.Preferences).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}
