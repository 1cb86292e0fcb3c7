package dto

// TodoRequestData is the POST/PUT body. Server-assigned fields (id,
// createdAt, completedAt) are not accepted from callers.
type TodoRequestData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}
