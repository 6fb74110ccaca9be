package dto

type CommentRequest struct {
	Content string `json:"content"`
}

func (r CommentRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Content == "" {
		errors["content"] = "Content is required"
	}
	return errors
}
