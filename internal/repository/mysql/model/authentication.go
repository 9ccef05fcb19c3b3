package model

// Authentication is a refresh token currently in use.
type Authentication struct {
	Token string `gorm:"primaryKey;type:varchar(512)"`
}

func (Authentication) TableName() string {
	return "authentications"
}
