// Package conversation tracks one in-progress workflow per user: the current
// step plus the parameters collected so far. Input that does not match the
// expected step is ignored, and cancel always returns the user to no state
// without touching the ledger.
package conversation

import "sync"

type Flow string

const (
	FlowBuy      Flow = "buy"
	FlowSell     Flow = "sell"
	FlowTopUp    Flow = "topup"
	FlowWithdraw Flow = "withdraw"
)

type Step string

const (
	StepNone Step = ""

	StepBuyToken   Step = "BUY_TOKEN"
	StepBuyNetwork Step = "BUY_NETWORK"
	StepBuyAmount  Step = "BUY_AMOUNT"
	StepBuyWallet  Step = "BUY_WALLET"
	StepBuyConfirm Step = "BUY_CONFIRM"

	StepSellToken   Step = "SELL_TOKEN"
	StepSellNetwork Step = "SELL_NETWORK"
	StepSellSender  Step = "SELL_SENDER"
	StepSellAmount  Step = "SELL_AMOUNT"
	StepSellTx      Step = "SELL_TX"

	StepTopUpAmount Step = "TOPUP_AMOUNT"
	StepTopUpMethod Step = "TOPUP_METHOD"
	StepTopUpName   Step = "TOPUP_NAME"
	StepTopUpProof  Step = "TOPUP_PROOF"

	StepWithdrawMethod Step = "WD_METHOD"
	StepWithdrawTarget Step = "WD_TARGET"
	StepWithdrawName   Step = "WD_NAME"
	StepWithdrawAmount Step = "WD_AMOUNT"
)

type BuyDraft struct {
	Token    string
	Network  string
	AmountRp int64
	FeeRp    int64
	NetRp    int64
	Wallet   string
}

type SellDraft struct {
	Token    string
	Network  string
	Sender   string
	Quantity float64
	GrossRp  int64
	FeeRp    int64
	NetRp    int64
}

type TopUpDraft struct {
	AmountRp   int64
	Method     string
	SenderName string
}

type WithdrawDraft struct {
	Method string
	Target string
	Name   string
}

type State struct {
	Flow Flow
	Step Step

	Buy      BuyDraft
	Sell     SellDraft
	TopUp    TopUpDraft
	Withdraw WithdrawDraft
}

type Manager struct {
	mu     sync.Mutex
	states map[string]*State
}

func NewManager() *Manager {
	return &Manager{states: make(map[string]*State)}
}

// Begin discards any in-progress flow for the user and starts a new one at
// its first step.
func (m *Manager) Begin(userID string, flow Flow, first Step) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[userID] = &State{Flow: flow, Step: first}
}

// Transition applies mutate and moves the user from one step to the next.
// It returns false, leaving everything untouched, when the user is not
// currently at the expected step.
func (m *Manager) Transition(userID string, from, to Step, mutate func(*State)) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.states[userID]
	if !ok || s.Step != from {
		return State{}, false
	}
	if mutate != nil {
		mutate(s)
	}
	s.Step = to
	return *s, true
}

// Finish consumes a flow at its final collection step: it applies mutate,
// clears the state, and returns the collected parameters.
func (m *Manager) Finish(userID string, from Step, mutate func(*State)) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.states[userID]
	if !ok || s.Step != from {
		return State{}, false
	}
	if mutate != nil {
		mutate(s)
	}
	out := *s
	delete(m.states, userID)
	return out, true
}

// Peek returns a copy of the user's current state.
func (m *Manager) Peek(userID string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[userID]
	if !ok {
		return State{}, false
	}
	return *s, true
}

// Cancel discards accumulated parameters from any step. It reports whether
// there was a flow to cancel.
func (m *Manager) Cancel(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.states[userID]
	delete(m.states, userID)
	return ok
}
