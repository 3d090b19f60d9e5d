package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

/*

User is the profile of a choir member

Id: primary key, equal to the id issued by the identity provider
Email: sign-in email, unique per user
Name: display name
Bio: free text shown on the profile page
ProfileImageUrl: blob store URL of the avatar
Role: USER or ADMIN, admins manage music, news and themes
IsActive: inactive users are hidden from member lists
CreatedAt: time of sign-up
LastLoginAt: time of the latest successful sign-in
UploadedImages: URLs of images uploaded by this user
UploadedTexts: references to texts uploaded by this user

*/
type User struct {
	Id              string     `gorm:"primaryKey" json:"id"`
	Email           string     `gorm:"index" json:"email"`
	Name            string     `json:"name"`
	Bio             string     `json:"bio"`
	ProfileImageUrl string     `json:"profileImageUrl"`
	Role            UserRole   `json:"role"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	LastLoginAt     time.Time  `json:"lastLoginAt"`
	UploadedImages  StringList `json:"uploadedImages"`
	UploadedTexts   StringList `json:"uploadedTexts"`
}

func (User) TableName() string {
	return "users"
}

// NewUser returns a user with a fresh id and default field values.
func NewUser() User {
	now := time.Now()
	return User{
		Id:             uuid.New().String(),
		Role:           UserRoleUser,
		IsActive:       true,
		CreatedAt:      now,
		LastLoginAt:    now,
		UploadedImages: StringList{},
		UploadedTexts:  StringList{},
	}
}

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

var AllUserRole = []UserRole{
	UserRoleUser,
	UserRoleAdmin,
}

func (e UserRole) IsValid() bool {
	switch e {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (e UserRole) String() string {
	return string(e)
}

// ParseUserRole maps a persisted role name back to a UserRole.
func ParseUserRole(name string) (UserRole, error) {
	r := UserRole(name)
	if !r.IsValid() {
		return "", errors.Wrapf(ErrUnknownEnum, "user role %q", name)
	}
	return r, nil
}

func (e UserRole) Value() (driver.Value, error) {
	if !e.IsValid() {
		return nil, errors.Wrapf(ErrUnknownEnum, "user role %q", string(e))
	}
	return string(e), nil
}

func (e *UserRole) Scan(value interface{}) error {
	return scanEnum(value, func(s string) (err error) {
		*e, err = ParseUserRole(s)
		return err
	})
}

func (e *UserRole) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, func(s string) (err error) {
		*e, err = ParseUserRole(s)
		return err
	})
}
