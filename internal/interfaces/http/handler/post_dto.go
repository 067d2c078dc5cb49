package handler

// PostRequest is the body for creating or editing a post
type PostRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}

// CommentRequest is the body for adding or editing a comment
type CommentRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}
