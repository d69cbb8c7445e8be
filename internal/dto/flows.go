package dto

type TextInputDTO struct {
	Value string `json:"value"`
}

type AmountInputDTO struct {
	AmountRp int64 `json:"amount_rp"`
}

type QuantityInputDTO struct {
	Quantity float64 `json:"quantity"`
}

type ConfirmInputDTO struct {
	Confirm bool `json:"confirm"`
}

// FlowStepResponseDTO reports where the conversation moved after an input.
// Ignored is set when the input did not match the expected step and was
// dropped without effect.
type FlowStepResponseDTO struct {
	Flow    string `json:"flow,omitempty"`
	Step    string `json:"step,omitempty"`
	Ignored bool   `json:"ignored,omitempty"`
	Message string `json:"message,omitempty"`
}

type MaintenanceNoticeDTO struct {
	Message string `json:"message"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Reason  string `json:"reason"`
}
