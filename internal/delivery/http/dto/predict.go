package dto

type PredictRequest struct {
	UserID string `json:"user_id"`
}

// PredictResponse mirrors the legacy model API: three parallel arrays. The
// "similiarity" key is misspelled on the wire on purpose; the deployed
// frontend depends on it.
type PredictResponse struct {
	ID         []string  `json:"id"`
	Position   []string  `json:"position"`
	Similarity []float64 `json:"similiarity"`
}
