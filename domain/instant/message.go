package instant

// Member is the host under whose namespace events and messages are scoped.
// This core never creates members through its public surface; they pre-exist.
type Member struct {
	UID         string  `json:"uid"`
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}

// Author identifies who wrote a reply. Optional on a reply.
type Author struct {
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}

// Reply is an embedded value inside a Message, not an addressable entity.
// CreateAt is computed by the caller at append time (RFC 3339).
type Reply struct {
	Reply    string  `json:"reply"`
	CreateAt string  `json:"createAt"`
	Author   *Author `json:"author,omitempty"`
}

// Message is a question posted into an event's thread.
// CreateAt is store-assigned and immutable; UpdateAt is refreshed whenever
// a reply is appended and absent until then. Reply is ordered newest first
// and absent until the first reply.
type Message struct {
	ID         string  `json:"id"`
	Message    string  `json:"message"`
	ReplyCount int     `json:"replyCount"`
	CreateAt   string  `json:"createAt"`
	UpdateAt   *string `json:"updateAt,omitempty"`
	Reply      []Reply `json:"reply,omitempty"`
}
