package identity

import (
	"context"
	"errors"

	"github.com/campfirehq/campfire/app/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no identity exists for an email.
	ErrNotFound = errors.New("identity not found")
	// ErrEmailTaken is returned when a create races a concurrent create for
	// the same email. Callers should re-fetch and reuse the winner.
	ErrEmailTaken = errors.New("email already registered")
)

// Account is the minimal view of an identity the fulfillment pipeline needs.
type Account struct {
	ID    uint
	Email string
}

// Provider is the auth-provider collaborator. The default implementation is
// backed by the local users table; a hosted auth backend would satisfy the
// same interface.
type Provider interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, email, password string, emailConfirmed bool) (*Account, error)
}

type gormProvider struct {
	db *gorm.DB
}

// NewGormProvider creates an identity provider over the local users table.
func NewGormProvider(db *gorm.DB) Provider {
	return &gormProvider{db: db}
}

func (p *gormProvider) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var user models.User
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Account{ID: user.ID, Email: user.Email}, nil
}

func (p *gormProvider) Create(ctx context.Context, email, password string, emailConfirmed bool) (*Account, error) {
	user, err := models.NewUser(email, password, emailConfirmed)
	if err != nil {
		return nil, err
	}
	if err := p.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique index on email turns the create/create race into a
		// duplicate-key error instead of a second account.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &Account{ID: user.ID, Email: user.Email}, nil
}
