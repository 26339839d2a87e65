package flow

import (
	"encoding/json"
	"fmt"

	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// A flow marshals as a JSON array of item objects. Each item carries
// exactly one of two keys: {"token": {...}} for a token, or
// {"split": [{"gate": {...}, "flow": [...]}, ...]} for a split.
// Unmarshaling rebuilds split sets through NewSplitSet, so decoding output
// of this codec re-normalizes to an identical tree.

type itemJSON struct {
	Token *token.Token `json:"token,omitempty"`
	Split []splitJSON  `json:"split,omitempty"`
}

type splitJSON struct {
	Gate gate.Gate `json:"gate"`
	Flow *Flow     `json:"flow"`
}

// MarshalJSON encodes the flow as an array of items.
func (f Flow) MarshalJSON() ([]byte, error) {
	items := make([]itemJSON, 0, len(f.Items))
	for _, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			t := v.Token
			items = append(items, itemJSON{Token: &t})
		case SplitItem:
			splits := make([]splitJSON, 0, v.Splits.Len())
			for _, sp := range v.Splits.Splits() {
				sub := sp.Flow
				if sub == nil {
					sub = New()
				}
				splits = append(splits, splitJSON{Gate: sp.Gate, Flow: sub})
			}
			items = append(items, itemJSON{Split: splits})
		default:
			return nil, fmt.Errorf("flow: cannot encode item %T", it)
		}
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes an item array, normalizing every split set.
func (f *Flow) UnmarshalJSON(data []byte) error {
	var raw []itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	items := make([]Item, 0, len(raw))
	for i, it := range raw {
		switch {
		case it.Token != nil && it.Split == nil:
			items = append(items, TokenItem{Token: *it.Token})
		case it.Token == nil && it.Split != nil:
			splits := make([]Split, 0, len(it.Split))
			for _, sp := range it.Split {
				splits = append(splits, Split{Flow: sp.Flow, Gate: sp.Gate})
			}
			items = append(items, SplitItem{Splits: NewSplitSet(splits...)})
		default:
			return fmt.Errorf("flow: item %d must carry exactly one of token or split", i)
		}
	}
	f.Items = items
	return nil
}
