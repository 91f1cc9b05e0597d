// Package dto defines data transfer objects for the users feature's HTTP
// transport layer.
package dto

// CreateUserReq represents the request body for POST /user.
// Both fields are mandatory and must be non-empty.
type CreateUserReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
