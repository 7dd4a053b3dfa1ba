package dto

type RegisterRequest struct {
	Name string `json:"name"`
}
