package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t domain.Thread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}
