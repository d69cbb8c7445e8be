package dto

type BalanceResponseDTO struct {
	BalanceRp int64  `json:"balance_rp"`
	Wallet    string `json:"wallet,omitempty"`
}

type TopUpMethodResponseDTO struct {
	Step        string `json:"step"`
	Method      string `json:"method"`
	Instruction string `json:"instruction"`
}

type FundingRequestResponseDTO struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	AmountRp int64  `json:"amount_rp"`
	Message  string `json:"message,omitempty"`
}

type WithdrawStartResponseDTO struct {
	Step    string   `json:"step"`
	Methods []string `json:"methods"`
}
