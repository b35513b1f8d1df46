package api_dto

// Envelope is the wrapper every backend response uses.
type Envelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

// ModuleRaw is an oracle module as returned by the backend.
type ModuleRaw struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Version     string `json:"version,omitempty"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

// DisputeRaw is a dispute as returned by the backend. Bond is a decimal wei amount.
type DisputeRaw struct {
	ID         string `json:"id"`
	RequestID  string `json:"requestId"`
	ResponseID string `json:"responseId,omitempty"`
	Disputer   string `json:"disputer"`
	Proposer   string `json:"proposer"`
	Status     string `json:"status"`
	Bond       string `json:"bond,omitempty"`
	CreatedAt  int64  `json:"createdAt,omitempty"`
}

// DisputeQueryRaw is the body of a dispute list request.
type DisputeQueryRaw struct {
	RequestID string `json:"requestId,omitempty"`
	Status    string `json:"status,omitempty"`
	Page      int    `json:"page,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}
