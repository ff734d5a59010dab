package request

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type Thread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ToPayload: Request -> Domain
func (r *Thread) ToPayload(userID string) domain.AddThreadPayload {
	return domain.AddThreadPayload{
		Title:  sanitize(r.Title),
		Body:   sanitize(r.Body),
		UserID: userID,
	}
}
