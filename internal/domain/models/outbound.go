package models

// Notice variants.
const (
	NoticeDefault     = "default"
	NoticeDestructive = "destructive"
)

// Notice is the transient outcome message shown to the user after an action.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// OutboundMessageRequest represents a text notification to a phone number.
type OutboundMessageRequest struct {
	To      string `json:"to" binding:"required"`
	Message string `json:"message" binding:"required"`
}
