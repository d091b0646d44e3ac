package chat

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ClassifyResponse struct {
	Intent  string `json:"intent"`
	OrderID string `json:"order_id,omitempty"`
	Count   int    `json:"count,omitempty"`
	Query   string `json:"query,omitempty"`
	Matched bool   `json:"matched"`
}

type TableStatus struct {
	Name   string `json:"name"`
	Rows   int    `json:"rows"`
	Loaded bool   `json:"loaded"`
}

type StatusResponse struct {
	Ready      bool          `json:"ready"`
	Generation string        `json:"generation,omitempty"`
	Tables     []TableStatus `json:"tables"`
}
