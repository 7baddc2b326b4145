package core

// fake_store_test.go provides an in-memory Store for exercising the
// reconciliation core without a database. Lookups use the same tie-break as
// the real store: oldest record first.

import (
	"context"

	"github.com/google/uuid"
)

type fakeStore struct {
	equipment []*Equipment
	recipes   map[uuid.UUID]*Recipe

	creates     int
	updates     int
	stepUpdates int

	findErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{recipes: make(map[uuid.UUID]*Recipe)}
}

func (f *fakeStore) FindEquipmentByTag(_ context.Context, tag string) (*Equipment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, rec := range f.equipment {
		if rec.Tag != "" && rec.Tag == tag {
			return copyEquipment(rec), nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindEquipmentByName(_ context.Context, name string) (*Equipment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, rec := range f.equipment {
		if rec.Name == name {
			return copyEquipment(rec), nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateEquipment(_ context.Context, fields EquipmentFields) (*Equipment, error) {
	f.creates++
	rec := &Equipment{ID: uuid.New()}
	applyFields(rec, fields)
	f.equipment = append(f.equipment, rec)
	return copyEquipment(rec), nil
}

func (f *fakeStore) UpdateEquipment(_ context.Context, id uuid.UUID, fields EquipmentFields) (*Equipment, error) {
	f.updates++
	for _, rec := range f.equipment {
		if rec.ID == id {
			applyFields(rec, fields)
			return copyEquipment(rec), nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetRecipeWithSteps(_ context.Context, id uuid.UUID) (*Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, nil
	}
	cp := *recipe
	cp.Steps = append([]RecipeStep(nil), recipe.Steps...)
	return &cp, nil
}

func (f *fakeStore) UpdateRecipeStep(_ context.Context, id uuid.UUID, req StepRequirements) (*RecipeStep, error) {
	f.stepUpdates++
	for _, recipe := range f.recipes {
		for i := range recipe.Steps {
			if recipe.Steps[i].ID == id {
				step := &recipe.Steps[i]
				step.SteamRequired = req.SteamRequired
				step.PowerRequired = req.PowerRequired
				step.CoolingRequired = req.CoolingRequired
				step.ChilledWaterRequired = req.ChilledWaterRequired
				cp := *step
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func applyFields(rec *Equipment, fields EquipmentFields) {
	if fields.Tag != nil {
		rec.Tag = *fields.Tag
	}
	if fields.Name != nil {
		rec.Name = *fields.Name
	}
	if fields.MaxSteamLoad != nil {
		rec.MaxSteamLoad = *fields.MaxSteamLoad
	}
	if fields.MaxPowerLoad != nil {
		rec.MaxPowerLoad = *fields.MaxPowerLoad
	}
	if fields.MaxCoolingLoad != nil {
		rec.MaxCoolingLoad = *fields.MaxCoolingLoad
	}
	if fields.MaxChilledWaterLoad != nil {
		rec.MaxChilledWaterLoad = *fields.MaxChilledWaterLoad
	}
}

func copyEquipment(rec *Equipment) *Equipment {
	cp := *rec
	return &cp
}
