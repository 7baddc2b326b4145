package core

// importer.go orchestrates the three ingestion paths. Each import call is a
// sequential fold over the source rows with an explicit outcome accumulator:
// rows are processed one at a time, in source order, because a row's
// reconciliation may depend on store state mutated by an earlier row in the
// same call (two rows naming the same new equipment must not both create).
// No retries, no partial rollback: rows committed before a later failure
// stay committed.

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fermworks/plantimport/internal/schema"
)

// Service wires the reconciliation core to its collaborators.
type Service struct {
	store     Store
	extractor Extractor
}

// NewService creates an import service. The extractor may be nil when the
// document path is not configured; the tabular paths work without it.
func NewService(store Store, extractor Extractor) *Service {
	return &Service{store: store, extractor: extractor}
}

// ImportEquipmentFromTable ingests an energy balance sheet: each row is
// resolved to a canonical equipment candidate and reconciled against the
// store. Rows with neither tag nor name are dropped silently.
func (s *Service) ImportEquipmentFromTable(ctx context.Context, data []byte) ([]EquipmentOutcome, error) {
	rows, err := ParseRows(data, schema.EnergyBalanceSpecs)
	if err != nil {
		return nil, err
	}

	log := slog.Default().With("import_id", uuid.NewString(), "path", "energy_balance")
	outcomes := make([]EquipmentOutcome, 0, len(rows))

	for _, row := range rows {
		res := ResolveRow(row, schema.EnergyBalanceSpecs)
		cand := EquipmentCandidate{
			Tag:                 res.Text(schema.FieldTag),
			Name:                res.Text(schema.FieldName),
			MaxSteamLoad:        res.Number(schema.FieldMaxSteamLoad),
			MaxPowerLoad:        res.Number(schema.FieldMaxPowerLoad),
			MaxCoolingLoad:      res.Number(schema.FieldMaxCoolingLoad),
			MaxChilledWaterLoad: res.Number(schema.FieldMaxChilledWaterLoad),
		}
		out, err := reconcileEquipment(ctx, s.store, cand)
		if err != nil {
			return nil, err
		}
		if out != nil {
			outcomes = append(outcomes, *out)
		}
	}

	log.Info("equipment import complete",
		"rows", len(rows),
		"reconciled", len(outcomes),
		"skipped", len(rows)-len(outcomes),
	)
	return outcomes, nil
}

// ImportUtilityRequirements ingests a utility requirement sheet for one
// recipe. The recipe's steps are loaded once, up front; an unknown recipe id
// fails the whole call before any row is processed. Rows whose hint matches
// no step, or that carry no hint at all, are dropped silently.
func (s *Service) ImportUtilityRequirements(ctx context.Context, data []byte, recipeID uuid.UUID) ([]StepOutcome, error) {
	recipe, err := s.store.GetRecipeWithSteps(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load recipe %s: %w", recipeID, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %s: %w", recipeID, ErrRecipeNotFound)
	}

	rows, err := ParseRows(data, schema.UtilityRequirementSpecs)
	if err != nil {
		return nil, err
	}

	log := slog.Default().With("import_id", uuid.NewString(), "path", "utility_requirements", "recipe_id", recipeID)
	outcomes := make([]StepOutcome, 0, len(rows))

	for _, row := range rows {
		res := ResolveRow(row, schema.UtilityRequirementSpecs)
		hint := res.Text(schema.FieldStepName)
		if hint == "" {
			continue
		}

		idx, matches := matchStep(recipe.Steps, hint)
		if idx < 0 {
			continue
		}
		if matches > 1 {
			log.Warn("ambiguous step hint",
				"hint", hint,
				"matches", matches,
				"selected", recipe.Steps[idx].Name,
			)
		}

		// Requirements always overwrite, zeros included.
		req := StepRequirements{
			SteamRequired:        res.Number(schema.FieldSteamRequired).OrZero(),
			PowerRequired:        res.Number(schema.FieldPowerRequired).OrZero(),
			CoolingRequired:      res.Number(schema.FieldCoolingRequired).OrZero(),
			ChilledWaterRequired: res.Number(schema.FieldChilledWaterRequired).OrZero(),
		}
		step, err := s.store.UpdateRecipeStep(ctx, recipe.Steps[idx].ID, req)
		if err != nil {
			return nil, fmt.Errorf("update step %s: %w", recipe.Steps[idx].ID, err)
		}
		recipe.Steps[idx] = *step
		outcomes = append(outcomes, StepOutcome{Status: StatusUpdated, Step: step})
	}

	log.Info("utility requirement import complete",
		"rows", len(rows),
		"updated", len(outcomes),
		"skipped", len(rows)-len(outcomes),
	)
	return outcomes, nil
}

// ImportFromDocument ingests an unstructured PFD document: the first sheet is
// rendered to flat text, the extractor turns it into a structured equipment
// list, and each entry is reconciled by tag/name (no capacity fields on this
// path). The raw extraction payload is returned alongside the outcomes.
func (s *Service) ImportFromDocument(ctx context.Context, data []byte) (*DocumentImportResult, error) {
	if s.extractor == nil {
		return nil, fmt.Errorf("document import: no extractor configured")
	}

	text := RenderFirstSheetAsText(data)
	structure, err := s.extractor.ExtractStructure(ctx, text)
	if err != nil {
		return nil, err
	}

	log := slog.Default().With("import_id", uuid.NewString(), "path", "pfd_document")
	outcomes := make([]EquipmentOutcome, 0, len(structure.Equipment))

	for _, eq := range structure.Equipment {
		out, err := reconcileEquipment(ctx, s.store, EquipmentCandidate{Tag: eq.Tag, Name: eq.Name})
		if err != nil {
			return nil, err
		}
		if out != nil {
			outcomes = append(outcomes, *out)
		}
	}

	log.Info("document import complete",
		"extracted", len(structure.Equipment),
		"reconciled", len(outcomes),
	)
	return &DocumentImportResult{Raw: structure.Raw, Equipment: outcomes}, nil
}
