package dto

type RecommendationResponse struct {
	JobID    string  `json:"job_id"`
	Position string  `json:"position"`
	Score    float64 `json:"similarity_score"`
}
