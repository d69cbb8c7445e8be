package dto

type DecisionRequestDTO struct {
	Action string `json:"action"` // approve | reject
}

type DecisionResponseDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	AmountRp int64  `json:"amount_rp"`
	Status   string `json:"status"`
}

type FeatureToggleRequestDTO struct {
	Enabled *bool `json:"enabled"`
}

type FeatureToggleResponseDTO struct {
	Feature string `json:"feature"`
	Enabled bool   `json:"enabled"`
}

type MaintenanceRequestDTO struct {
	Start  string `json:"start"`  // 2006-01-02_15:04
	End    string `json:"end"`    // 2006-01-02_15:04
	Reason string `json:"reason"`
}

type MaintenanceResponseDTO struct {
	Active bool   `json:"active"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Reason string `json:"reason,omitempty"`
}
