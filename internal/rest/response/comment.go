package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

// AddedContent is the created comment or reply.
type AddedContent struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedCommentFromDomain(c domain.Comment) AddedContent {
	return AddedContent{ID: c.ID, Content: c.Content, Owner: c.Owner}
}

func NewAddedReplyFromDomain(r domain.Reply) AddedContent {
	return AddedContent{ID: r.ID, Content: r.Content, Owner: r.Owner}
}
