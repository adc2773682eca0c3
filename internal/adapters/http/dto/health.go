package dto

// HealthResponse is the body of GET /health/live.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each store
// dependency to "ok" or its failure. Tasks is the number of tasks held in
// memory, present when the handler can see the task service.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Tasks  *int              `json:"tasks,omitempty"`
}
