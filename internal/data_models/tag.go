package dto

type TagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TagResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
