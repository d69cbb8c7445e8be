package domain

import "time"

// All fiat amounts are integer rupiah. Token quantities travel as wei-style
// integer strings so the document stays precise across JSON round trips.

type Account struct {
	Balance int64  `json:"balance"`
	Wallet  string `json:"wallet,omitempty"`
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

type TopUpRequest struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	AmountRp   int64         `json:"amount"`
	Method     string        `json:"method"`
	SenderName string        `json:"sender_name"`
	ProofRef   string        `json:"proof_ref"`
	Status     RequestStatus `json:"status"`
	DecidedBy  string        `json:"decided_by,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	DecidedAt  *time.Time    `json:"decided_at,omitempty"`
}

type WithdrawRequest struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	AmountRp  int64         `json:"amount"`
	Method    string        `json:"method"`
	Target    string        `json:"target"`
	Recipient string        `json:"name"`
	Status    RequestStatus `json:"status"`
	DecidedBy string        `json:"decided_by,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	DecidedAt *time.Time    `json:"decided_at,omitempty"`
}

// DepositRecord is the value stored in the used-hash map. Entries are
// write-once and never removed.
type DepositRecord struct {
	TxHash      string    `json:"tx_hash"`
	UserID      string    `json:"user_id"`
	Token       string    `json:"token"`
	Network     string    `json:"network"`
	TokenAmount string    `json:"amount_token"`
	GrossRp     int64     `json:"gross"`
	FeeRp       int64     `json:"fee"`
	NetRp       int64     `json:"net"`
	CreatedAt   time.Time `json:"time"`
}

type OrderStatus string

const (
	OrderBroadcasting OrderStatus = "broadcasting"
	OrderSent         OrderStatus = "sent"
	OrderFailed       OrderStatus = "failed"
)

// TransferOrder records a buy payout intent before it is broadcast, so an
// unknown send outcome can be reconciled against the chain instead of being
// rolled back blindly.
type TransferOrder struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Token     string      `json:"token"`
	Network   string      `json:"network"`
	Wallet    string      `json:"wallet"`
	AmountRp  int64       `json:"amount"`
	FeeRp     int64       `json:"fee"`
	NetRp     int64       `json:"net"`
	TokenWei  string      `json:"token_wei"`
	TxHash    string      `json:"tx_hash,omitempty"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type MaintenanceWindow struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Reason string    `json:"reason"`
}

func (w MaintenanceWindow) Active(now time.Time) bool {
	return !now.Before(w.Start) && !now.After(w.End)
}

// Undo records the pre-debit state so a debit can be reversed after a
// dependent external action fails.
type Undo struct {
	UserID   string
	AmountRp int64
	Before   int64
}

// Document is the whole persisted store: one JSON document holding every map.
type Document struct {
	Users       map[string]*Account         `json:"users"`
	TopUps      map[string]*TopUpRequest    `json:"topups"`
	Withdraws   map[string]*WithdrawRequest `json:"withdraws"`
	Orders      map[string]*TransferOrder   `json:"orders"`
	UsedTx      map[string]*DepositRecord   `json:"_used_tx"`
	Maintenance *MaintenanceWindow          `json:"maintenance"`
}

func NewDocument() *Document {
	return &Document{
		Users:     make(map[string]*Account),
		TopUps:    make(map[string]*TopUpRequest),
		Withdraws: make(map[string]*WithdrawRequest),
		Orders:    make(map[string]*TransferOrder),
		UsedTx:    make(map[string]*DepositRecord),
	}
}

// Normalize backfills maps that are missing after loading an older document.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = make(map[string]*Account)
	}
	if d.TopUps == nil {
		d.TopUps = make(map[string]*TopUpRequest)
	}
	if d.Withdraws == nil {
		d.Withdraws = make(map[string]*WithdrawRequest)
	}
	if d.Orders == nil {
		d.Orders = make(map[string]*TransferOrder)
	}
	if d.UsedTx == nil {
		d.UsedTx = make(map[string]*DepositRecord)
	}
}

// User returns the account for id, creating a zero-balance default if absent.
func (d *Document) User(id string) *Account {
	acc, ok := d.Users[id]
	if !ok {
		acc = &Account{}
		d.Users[id] = acc
	}
	return acc
}
