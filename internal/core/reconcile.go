package core

// reconcile.go decides whether an incoming equipment record refers to an
// existing entity or a new one, and merges fields accordingly.
//
// Identity is a ranked lookup: an exact tag match is preferred over an exact
// name match, each as its own store call so the preference order is explicit
// and testable. Two records sharing neither key are never merged.
//
// The merge is deliberately conservative: a capacity field is written on
// update only when the candidate's value is present and non-zero, so a sheet
// that omits a column (or resolves it to the fallback) never wipes out
// previously-known capacities. The flip side, carried over from the original
// system on purpose: a capacity that is genuinely zero can be set at create
// but never via a later update.

import (
	"context"
	"fmt"
	"strings"
)

// EquipmentCandidate is a canonical equipment-like record headed into
// reconciliation. Tag and name are optional; capacities may be absent.
type EquipmentCandidate struct {
	Tag                 string
	Name                string
	MaxSteamLoad        Number
	MaxPowerLoad        Number
	MaxCoolingLoad      Number
	MaxChilledWaterLoad Number
}

// reconcileEquipment resolves cand against the store, then creates a new
// record or merges into the matched one. A nil outcome with nil error means
// the row was skipped (no tag and no name, or unmatched with no name to
// create from) — expected noise, not a failure.
func reconcileEquipment(ctx context.Context, st Store, cand EquipmentCandidate) (*EquipmentOutcome, error) {
	tag := strings.TrimSpace(cand.Tag)
	name := strings.TrimSpace(cand.Name)
	if tag == "" && name == "" {
		return nil, nil
	}

	existing, err := findEquipment(ctx, st, tag, name)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		// Creation needs at least a name.
		if name == "" {
			return nil, nil
		}
		created, err := st.CreateEquipment(ctx, createFields(tag, name, cand))
		if err != nil {
			return nil, fmt.Errorf("create equipment %q: %w", name, err)
		}
		return &EquipmentOutcome{Status: StatusCreated, Equipment: created}, nil
	}

	updated, err := st.UpdateEquipment(ctx, existing.ID, mergeFields(tag, name, cand))
	if err != nil {
		return nil, fmt.Errorf("update equipment %s: %w", existing.ID, err)
	}
	return &EquipmentOutcome{Status: StatusUpdated, Equipment: updated}, nil
}

// findEquipment is the ranked identity lookup: tag first, then name. The
// store's tie-break among multiple rows matching one key is its own concern;
// whatever record it returns is authoritative.
func findEquipment(ctx context.Context, st Store, tag, name string) (*Equipment, error) {
	if tag != "" {
		rec, err := st.FindEquipmentByTag(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("find equipment by tag %q: %w", tag, err)
		}
		if rec != nil {
			return rec, nil
		}
	}
	if name != "" {
		rec, err := st.FindEquipmentByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("find equipment by name %q: %w", name, err)
		}
		if rec != nil {
			return rec, nil
		}
	}
	return nil, nil
}

// createFields builds a full record: absent capacities default to 0 here,
// at the write boundary, not during resolution.
func createFields(tag, name string, cand EquipmentCandidate) EquipmentFields {
	f := EquipmentFields{Name: &name}
	if tag != "" {
		f.Tag = &tag
	}
	steam := cand.MaxSteamLoad.OrZero()
	power := cand.MaxPowerLoad.OrZero()
	cooling := cand.MaxCoolingLoad.OrZero()
	chilled := cand.MaxChilledWaterLoad.OrZero()
	f.MaxSteamLoad = &steam
	f.MaxPowerLoad = &power
	f.MaxCoolingLoad = &cooling
	f.MaxChilledWaterLoad = &chilled
	return f
}

// mergeFields builds a partial update: identity fields only when non-empty,
// capacity fields only when present and non-zero. An all-absent candidate
// yields an empty field set, which the store treats as a no-op write.
func mergeFields(tag, name string, cand EquipmentCandidate) EquipmentFields {
	var f EquipmentFields
	if tag != "" {
		f.Tag = &tag
	}
	if name != "" {
		f.Name = &name
	}
	f.MaxSteamLoad = nonZero(cand.MaxSteamLoad)
	f.MaxPowerLoad = nonZero(cand.MaxPowerLoad)
	f.MaxCoolingLoad = nonZero(cand.MaxCoolingLoad)
	f.MaxChilledWaterLoad = nonZero(cand.MaxChilledWaterLoad)
	return f
}

func nonZero(n Number) *float64 {
	if !n.Present || n.Value == 0 {
		return nil
	}
	v := n.Value
	return &v
}
