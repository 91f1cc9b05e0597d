package dto

// CreateAdvertisementResp is the response body for a successful
// POST /advertisement.
type CreateAdvertisementResp struct {
	Status string `json:"status"`
	IDAdv  uint   `json:"id_adv"`
	UserID uint   `json:"user_id"`
}

// AdvertisementResp is the response body for GET /advertisement/:id.
// Date is the creation timestamp rendered as an ISO-8601 string.
type AdvertisementResp struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	UserID      uint   `json:"user_id"`
}
