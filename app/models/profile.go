package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Profile is the community-facing record for a user. It shares its primary
// key with the identity record so email stays the join key between a
// purchase and an account.
type Profile struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Email     string    `gorm:"type:varchar(200);index" json:"email" validate:"required,email"`
	Username  string    `gorm:"uniqueIndex;type:varchar(100)" json:"username" validate:"required,min=1,max=100"`
	FullName  string    `gorm:"type:varchar(150)" json:"full_name" validate:"max=150"`
	Role      string    `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin"`
	Bio       string    `gorm:"type:text;default:null" json:"bio" validate:"max=1000"`
	AvatarURL string    `gorm:"type:varchar(255);default:null" json:"avatar_url" validate:"max=255"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Profile) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// UsernameFromEmail derives a username from the local part of an email
// address: lower-cased, non-alphanumeric characters stripped.
func UsernameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = strings.ToLower(local)

	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "member"
	}
	return b.String()
}
