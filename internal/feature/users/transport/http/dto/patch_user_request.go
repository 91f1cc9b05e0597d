package dto

// PatchUserReq represents the request body for PATCH /user/:id.
// Pointer fields distinguish an absent or null field (nil) from a
// provided value; only provided values are applied.
type PatchUserReq struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
