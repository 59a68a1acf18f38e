package models

import (
	"strings"
	"time"
)

// Account status constants
const (
	StatusOn  = "On"
	StatusOff = "Off"
)

// DefaultRoleName is reported for users without a role
const DefaultRoleName = "Utilisateur"

// User represents a staff account (utilisateur)
type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Username          string     `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	LastName          string     `gorm:"column:nom;size:30;not null" json:"nom"`
	FirstName         string     `gorm:"column:prenom;size:50;not null" json:"prenom"`
	Function          string     `gorm:"column:fonction;size:200" json:"fonction"`
	Contact           string     `gorm:"column:contact;size:10;uniqueIndex;not null" json:"contact"`
	Email             *string    `gorm:"column:email;size:50;uniqueIndex" json:"email"`
	EncryptedPassword string     `gorm:"column:password;size:128;not null" json:"-"`
	RoleID            *uint      `gorm:"column:role" json:"role"`
	PermissionID      *uint      `gorm:"column:permission" json:"permission"`
	Status            string     `gorm:"column:statut;size:3;default:On" json:"statut"`
	PhotoPath         *string    `gorm:"column:photo" json:"photo"`
	LastLoginAt       *time.Time `gorm:"column:derniereconnection" json:"derniereconnection"`
	CreatedAt         time.Time  `gorm:"column:dateajout" json:"dateajout"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Associations
	Role       *Role       `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL" json:"-"`
	Permission *Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "utilisateurs"
}

// IsActive returns true if the account can log in
func (u *User) IsActive() bool {
	return u.Status != StatusOff
}

// DisplayName returns "prenom nom"
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// RoleName returns the role name or DefaultRoleName
func (u *User) RoleName() string {
	if u.Role != nil && u.Role.Name != "" {
		return u.Role.Name
	}
	return DefaultRoleName
}

// Validate checks required fields and normalizes the status
func (u *User) Validate() error {
	u.Username = strings.TrimSpace(u.Username)
	u.LastName = strings.TrimSpace(u.LastName)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.Contact = strings.TrimSpace(u.Contact)
	if u.Username == "" {
		return invalid("le nom d'utilisateur est requis")
	}
	if u.LastName == "" || u.FirstName == "" {
		return invalid("le nom et le prénom sont requis")
	}
	if u.Contact == "" {
		return invalid("le contact est requis")
	}
	if len(u.Contact) > 10 {
		return invalid("le contact ne doit pas dépasser 10 caractères")
	}
	if u.Email != nil {
		email := strings.TrimSpace(*u.Email)
		if email == "" {
			u.Email = nil
		} else if !strings.Contains(email, "@") {
			return invalid("adresse e-mail invalide: %s", email)
		} else {
			u.Email = &email
		}
	}
	switch u.Status {
	case "":
		u.Status = StatusOn
	case StatusOn, StatusOff:
	default:
		return invalid("statut inconnu: %s", u.Status)
	}
	return nil
}

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	LastName    string     `json:"nom"`
	FirstName   string     `json:"prenom"`
	FullName    string     `json:"fullname"`
	Function    string     `json:"fonction"`
	Contact     string     `json:"contact"`
	Email       *string    `json:"email"`
	RoleID      *uint      `json:"role"`
	RoleName    string     `json:"role_nom"`
	Permission  *uint      `json:"permission"`
	Status      string     `json:"statut"`
	PhotoURL    *string    `json:"photo_url"`
	LastLoginAt *time.Time `json:"derniereconnection"`
	CreatedAt   time.Time  `json:"dateajout"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		LastName:    u.LastName,
		FirstName:   u.FirstName,
		FullName:    u.DisplayName(),
		Function:    u.Function,
		Contact:     u.Contact,
		Email:       u.Email,
		RoleID:      u.RoleID,
		RoleName:    u.RoleName(),
		Permission:  u.PermissionID,
		Status:      u.Status,
		PhotoURL:    u.PhotoPath,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// LoginUser is the user block returned by a successful login
type LoginUser struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"fullname"`
	Role     string  `json:"role"`
	PhotoURL *string `json:"photo_url"`
}

// ToLoginUser builds the login payload for u
func (u *User) ToLoginUser() LoginUser {
	return LoginUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.DisplayName(),
		Role:     u.RoleName(),
		PhotoURL: u.PhotoPath,
	}
}
