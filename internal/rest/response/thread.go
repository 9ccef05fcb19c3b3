package response

import "github.com/forum-api/forum-api/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t domain.AddedThread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}

type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

type Comment struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Date     string  `json:"date"`
	Content  string  `json:"content"`
	Replies  []Reply `json:"replies"`
}

type Reply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// NewThreadFromDomain maps a thread detail for clients. The deletion flags
// stay internal; deleted content is already masked.
func NewThreadFromDomain(t domain.ThreadDetail) Thread {
	comments := make([]Comment, len(t.Comments))
	for i, c := range t.Comments {
		replies := make([]Reply, len(c.Replies))
		for j, r := range c.Replies {
			replies[j] = Reply{
				ID:       r.ID,
				Content:  r.Content,
				Date:     r.Date,
				Username: r.Username,
			}
		}
		comments[i] = Comment{
			ID:       c.ID,
			Username: c.Username,
			Date:     c.Date,
			Content:  c.Content,
			Replies:  replies,
		}
	}
	return Thread{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date,
		Username: t.Username,
		Comments: comments,
	}
}
