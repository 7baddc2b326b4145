package core

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestReconcileEquipment_SkipsNoTagNoName(t *testing.T) {
	st := newFakeStore()

	out, err := reconcileEquipment(context.Background(), st, EquipmentCandidate{
		MaxSteamLoad: Num(5),
	})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out != nil {
		t.Errorf("expected skip, got outcome %+v", out)
	}
	if st.creates != 0 || st.updates != 0 {
		t.Errorf("no store mutation expected, got creates=%d updates=%d", st.creates, st.updates)
	}
}

func TestReconcileEquipment_CreateDefaultsCapacitiesToZero(t *testing.T) {
	st := newFakeStore()

	out, err := reconcileEquipment(context.Background(), st, EquipmentCandidate{
		Name:         "Boiler",
		MaxSteamLoad: Num(5),
	})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out.Status != StatusCreated {
		t.Fatalf("Status = %q, want created", out.Status)
	}
	rec := out.Equipment
	if rec.MaxSteamLoad != 5 {
		t.Errorf("MaxSteamLoad = %v, want 5", rec.MaxSteamLoad)
	}
	// Absent capacities become 0 on creation, not "absent".
	if rec.MaxPowerLoad != 0 || rec.MaxCoolingLoad != 0 || rec.MaxChilledWaterLoad != 0 {
		t.Errorf("absent capacities should default to 0, got %+v", rec)
	}
}

func TestReconcileEquipment_TagOnlyUnmatchedIsSkipped(t *testing.T) {
	st := newFakeStore()

	out, err := reconcileEquipment(context.Background(), st, EquipmentCandidate{Tag: "B-101"})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out != nil {
		t.Errorf("tag-only unmatched row should be skipped, got %+v", out)
	}
	if st.creates != 0 {
		t.Errorf("creates = %d, want 0", st.creates)
	}
}

func TestReconcileEquipment_PreservesStoredValueOnZero(t *testing.T) {
	st := newFakeStore()
	st.equipment = append(st.equipment, &Equipment{
		ID: uuid.New(), Name: "Boiler", MaxSteamLoad: 5,
	})

	// Explicit zero on update does not overwrite.
	out, err := reconcileEquipment(context.Background(), st, EquipmentCandidate{
		Name:         "Boiler",
		MaxSteamLoad: Num(0),
	})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out.Status != StatusUpdated {
		t.Fatalf("Status = %q, want updated", out.Status)
	}
	if out.Equipment.MaxSteamLoad != 5 {
		t.Errorf("MaxSteamLoad = %v, want preserved 5", out.Equipment.MaxSteamLoad)
	}

	// Absent on update does not overwrite either.
	out, err = reconcileEquipment(context.Background(), st, EquipmentCandidate{Name: "Boiler"})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out.Equipment.MaxSteamLoad != 5 {
		t.Errorf("MaxSteamLoad = %v, want preserved 5", out.Equipment.MaxSteamLoad)
	}
}

func TestReconcileEquipment_MatchByTagBeatsName(t *testing.T) {
	st := newFakeStore()
	byTag := &Equipment{ID: uuid.New(), Tag: "B-101", Name: "Old Boiler"}
	byName := &Equipment{ID: uuid.New(), Name: "Steam Boiler"}
	st.equipment = append(st.equipment, byName, byTag)

	out, err := reconcileEquipment(context.Background(), st, EquipmentCandidate{
		Tag:  "B-101",
		Name: "Steam Boiler",
	})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out.Status != StatusUpdated {
		t.Fatalf("Status = %q, want updated", out.Status)
	}
	if out.Equipment.ID != byTag.ID {
		t.Errorf("matched %s, want the tag match %s", out.Equipment.ID, byTag.ID)
	}
}

func TestReconcileEquipment_DifferentNameSameTagUpdates(t *testing.T) {
	st := newFakeStore()
	existing := &Equipment{ID: uuid.New(), Tag: "B-101", Name: "Boiler"}
	st.equipment = append(st.equipment, existing)

	out, err := reconcileEquipment(context.Background(), st, EquipmentCandidate{
		Tag:  "B-101",
		Name: "Utility Boiler",
	})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out.Status != StatusUpdated {
		t.Fatalf("Status = %q, want updated (no duplicate)", out.Status)
	}
	if st.creates != 0 {
		t.Errorf("creates = %d, want 0", st.creates)
	}
	if out.Equipment.ID != existing.ID {
		t.Errorf("updated %s, want existing %s", out.Equipment.ID, existing.ID)
	}
}

func TestReconcileEquipment_EmptyTagDoesNotClearStoredTag(t *testing.T) {
	st := newFakeStore()
	st.equipment = append(st.equipment, &Equipment{ID: uuid.New(), Tag: "B-101", Name: "Boiler"})

	out, err := reconcileEquipment(context.Background(), st, EquipmentCandidate{Name: "Boiler"})
	if err != nil {
		t.Fatalf("reconcileEquipment() error = %v", err)
	}
	if out.Equipment.Tag != "B-101" {
		t.Errorf("Tag = %q, want retained %q", out.Equipment.Tag, "B-101")
	}
}
