package dto

// PatchAdvertisementReq represents the request body for
// PATCH /advertisement/:id. The owner and creation timestamp are not
// patchable.
type PatchAdvertisementReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
