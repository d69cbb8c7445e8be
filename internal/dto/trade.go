package dto

type BuyStartResponseDTO struct {
	Step    string             `json:"step"`
	Tokens  []string           `json:"tokens"`
	RatesRp map[string]float64 `json:"rates_rp,omitempty"`
}

type BuyQuoteResponseDTO struct {
	Step     string `json:"step"`
	AmountRp int64  `json:"amount_rp"`
	FeeRp    int64  `json:"fee_rp"`
	NetRp    int64  `json:"net_rp"`
}

type BuyResultResponseDTO struct {
	Token       string  `json:"token"`
	Network     string  `json:"network"`
	AmountRp    int64   `json:"amount_rp"`
	FeeRp       int64   `json:"fee_rp"`
	NetRp       int64   `json:"net_rp"`
	TokenAmount float64 `json:"token_amount"`
	TxHash      string  `json:"tx_hash"`
	BalanceRp   int64   `json:"balance_rp"`
}

type SellQuoteResponseDTO struct {
	Step      string  `json:"step"`
	GrossRp   int64   `json:"gross_rp"`
	FeeRp     int64   `json:"fee_rp"`
	NetRp     int64   `json:"net_rp"`
	RateRp    float64 `json:"rate_rp"`
	HotWallet string  `json:"hot_wallet"`
}

type SellResultResponseDTO struct {
	TokenAmount float64 `json:"token_amount"`
	GrossRp     int64   `json:"gross_rp"`
	FeeRp       int64   `json:"fee_rp"`
	NetRp       int64   `json:"net_rp"`
	BeforeRp    int64   `json:"before_rp"`
	AfterRp     int64   `json:"after_rp"`
	TxHash      string  `json:"tx_hash"`
}
