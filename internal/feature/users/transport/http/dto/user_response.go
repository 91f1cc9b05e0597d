package dto

// CreateUserResp is the response body for a successful POST /user.
type CreateUserResp struct {
	Status string `json:"status"`
	ID     uint   `json:"id"`
}

// UserResp is the response body for GET /user/:id.
// The password is never echoed.
type UserResp struct {
	IDUser   uint   `json:"id_user"`
	Username string `json:"username"`
}
