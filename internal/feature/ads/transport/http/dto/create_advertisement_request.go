// Package dto defines data transfer objects for the ads feature's HTTP
// transport layer.
package dto

// CreateAdvertisementReq represents the request body for
// POST /advertisement. The referenced user is not checked for existence.
type CreateAdvertisementReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	UserID      uint   `json:"user_id" binding:"required"`
}
