// Package core provides the reconciliation logic for plant data imports.
// This package has no HTTP or storage dependencies and can be driven by any
// frontend; the entity store and the document extractor are injected.
package core

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// Equipment is a physical process unit tracked by tag/name and utility
// capacity limits. Capacities are unit-tagged: steam in t/h, power in kW,
// cooling and chilled water in TR.
type Equipment struct {
	ID                  uuid.UUID `json:"id"`
	Tag                 string    `json:"tag,omitempty"`
	Name                string    `json:"name"`
	MaxSteamLoad        float64   `json:"maxSteamLoad"`
	MaxPowerLoad        float64   `json:"maxPowerLoad"`
	MaxCoolingLoad      float64   `json:"maxCoolingLoad"`
	MaxChilledWaterLoad float64   `json:"maxChilledWaterLoad"`
}

// Recipe is an ordered production procedure. It is read-only from this
// package's perspective except through its child steps.
type Recipe struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Steps []RecipeStep `json:"steps"`
}

// RecipeStep is one operation within a recipe, carrying utility consumption
// requirements. Steps are updated in place, never created or deleted here.
type RecipeStep struct {
	ID                   uuid.UUID `json:"id"`
	RecipeID             uuid.UUID `json:"recipeId"`
	Name                 string    `json:"name"`
	SteamRequired        float64   `json:"steamRequired"`
	PowerRequired        float64   `json:"powerRequired"`
	CoolingRequired      float64   `json:"coolingRequired"`
	ChilledWaterRequired float64   `json:"chilledWaterRequired"`
}

// EquipmentFields is a partial equipment record for store writes.
// Nil fields are left untouched on update; on create they default to the
// zero value of the column.
type EquipmentFields struct {
	Tag                 *string
	Name                *string
	MaxSteamLoad        *float64
	MaxPowerLoad        *float64
	MaxCoolingLoad      *float64
	MaxChilledWaterLoad *float64
}

// StepRequirements carries the four utility requirement values written to a
// matched recipe step. All four are always written, zeros included.
type StepRequirements struct {
	SteamRequired        float64
	PowerRequired        float64
	CoolingRequired      float64
	ChilledWaterRequired float64
}

// Store is the persistent entity store consumed by the reconciliation core.
// Find and Get methods return (nil, nil) when no record exists. The store is
// expected to serialize concurrent writers itself; this package performs no
// application-level locking and provides no cross-call atomicity.
type Store interface {
	FindEquipmentByTag(ctx context.Context, tag string) (*Equipment, error)
	FindEquipmentByName(ctx context.Context, name string) (*Equipment, error)
	CreateEquipment(ctx context.Context, fields EquipmentFields) (*Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, fields EquipmentFields) (*Equipment, error)
	GetRecipeWithSteps(ctx context.Context, id uuid.UUID) (*Recipe, error)
	UpdateRecipeStep(ctx context.Context, id uuid.UUID, req StepRequirements) (*RecipeStep, error)
}

// ExtractedEquipment is one equipment entry in an extraction result.
type ExtractedEquipment struct {
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

// PFDStructure is the shape this package expects from the document extractor.
// Raw preserves the extractor's full payload for auditability; only the
// Equipment list is consumed. Output is trusted by shape only, never
// validated semantically.
type PFDStructure struct {
	Equipment []ExtractedEquipment `json:"equipment"`
	Raw       json.RawMessage      `json:"-"`
}

// Extractor is the document-extraction collaborator for the unstructured
// ingestion path. Treated as an opaque, possibly-imprecise classifier.
type Extractor interface {
	ExtractStructure(ctx context.Context, text string) (*PFDStructure, error)
}

// Status reports the reconciliation decision for one record.
type Status string

const (
	StatusCreated Status = "created"
	StatusUpdated Status = "updated"
)

// EquipmentOutcome is one entry in an import call's accumulated result list.
type EquipmentOutcome struct {
	Status    Status     `json:"status"`
	Equipment *Equipment `json:"equipment"`
}

// StepOutcome is one updated recipe step in a utility requirement import.
type StepOutcome struct {
	Status Status      `json:"status"`
	Step   *RecipeStep `json:"step"`
}

// DocumentImportResult carries both the raw extraction payload and the
// reconciliation outcomes, so callers can see what the extraction step
// produced even when reconciliation diverges from it.
type DocumentImportResult struct {
	Raw       json.RawMessage    `json:"raw"`
	Equipment []EquipmentOutcome `json:"equipment"`
}
