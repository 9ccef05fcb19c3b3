package response

import "github.com/forum-api/forum-api/domain"

type AddedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func NewAddedUserFromDomain(u domain.RegisteredUser) AddedUser {
	return AddedUser{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
	}
}
