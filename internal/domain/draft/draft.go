package draft

import (
	"encoding/json"
	"fmt"

	"mynbala-backend/internal/domain/promo"
)

// KeyPrefix namespaces draft keys inside session-scoped storage.
const KeyPrefix = "tickets_flow:"

// State is the resumable part of the ticket funnel. The JSON layout is shared with the
// web client and must stay stable.
type State struct {
	BranchID  string `json:"branchId"`
	TariffID  string `json:"tariffId"`
	Quantity  int    `json:"quantity"`
	PromoCode string `json:"promoCode"`
}

func Key(sessionID string) string {
	return KeyPrefix + sessionID
}

// Normalized returns the state with a trimmed upper-case promo code.
func (s State) Normalized() State {
	s.PromoCode = promo.Normalize(s.PromoCode)
	return s
}

func (s State) IsEmpty() bool {
	return s == State{}
}

func Marshal(s State) ([]byte, error) {
	return json.Marshal(s)
}

func Unmarshal(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode draft: %w", err)
	}
	return s, nil
}
