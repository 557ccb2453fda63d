package handlers

import (
	"encoding/json"
	"fmt"
	"math"

	"travelagency/internal/utils"
)

// Amount is a price field that accepts a JSON number or a formatted string
// such as "21.800,50" typed in the back office.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := utils.ParseAmount(s)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("nominal tidak valid: %q", s)
		}
		*a = Amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

func (a *Amount) ptr() *float64 {
	if a == nil {
		return nil
	}
	v := float64(*a)
	return &v
}
