// Package store implements the persistent entity store on PostgreSQL.
//
// It is the only owner of persisted state; the reconciliation core holds
// call-scoped views. Lookups that match multiple rows for one key return the
// oldest record — that tie-break is this layer's responsibility and is kept
// explicit in the queries.
package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fermworks/plantimport/internal/core"
)

//go:embed schema.sql
var schemaSQL string

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PGStore implements core.Store on PostgreSQL.
type PGStore struct {
	db DBTX
}

// New creates a PGStore on the given connection source.
func New(db DBTX) *PGStore {
	return &PGStore{db: db}
}

// EnsureSchema applies the embedded DDL. All statements are idempotent.
func EnsureSchema(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const equipmentColumns = `id, tag, name, max_steam_load, max_power_load, max_cooling_load, max_chilled_water_load`

// FindEquipmentByTag returns the oldest equipment record with the given tag,
// or (nil, nil) when none exists.
func (s *PGStore) FindEquipmentByTag(ctx context.Context, tag string) (*core.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE tag = $1 ORDER BY created_at LIMIT 1`
	return scanEquipment(s.db.QueryRow(ctx, query, tag))
}

// FindEquipmentByName returns the oldest equipment record with the given
// name, or (nil, nil) when none exists.
func (s *PGStore) FindEquipmentByName(ctx context.Context, name string) (*core.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE name = $1 ORDER BY created_at LIMIT 1`
	return scanEquipment(s.db.QueryRow(ctx, query, name))
}

// CreateEquipment inserts a new equipment record. Nil fields take the column
// defaults (empty tag, zero capacities); name is required.
func (s *PGStore) CreateEquipment(ctx context.Context, fields core.EquipmentFields) (*core.Equipment, error) {
	if fields.Name == nil || *fields.Name == "" {
		return nil, fmt.Errorf("create equipment: name is required")
	}

	query := `
		INSERT INTO equipment (tag, name, max_steam_load, max_power_load, max_cooling_load, max_chilled_water_load)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + equipmentColumns

	row := s.db.QueryRow(ctx, query,
		textOrEmpty(fields.Tag),
		*fields.Name,
		numOrZero(fields.MaxSteamLoad),
		numOrZero(fields.MaxPowerLoad),
		numOrZero(fields.MaxCoolingLoad),
		numOrZero(fields.MaxChilledWaterLoad),
	)
	return scanEquipment(row)
}

// UpdateEquipment applies a partial update: only non-nil fields are written.
// An empty field set is a no-op write that returns the current record.
func (s *PGStore) UpdateEquipment(ctx context.Context, id uuid.UUID, fields core.EquipmentFields) (*core.Equipment, error) {
	sb := newSetBuilder()
	sb.Add("tag", fields.Tag)
	sb.Add("name", fields.Name)
	sb.Add("max_steam_load", fields.MaxSteamLoad)
	sb.Add("max_power_load", fields.MaxPowerLoad)
	sb.Add("max_cooling_load", fields.MaxCoolingLoad)
	sb.Add("max_chilled_water_load", fields.MaxChilledWaterLoad)

	setClause, args := sb.Build()
	if setClause == "" {
		query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
		rec, err := scanEquipment(s.db.QueryRow(ctx, query, id))
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("update equipment: %s does not exist", id)
		}
		return rec, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE equipment SET %s, updated_at = now() WHERE id = $%d RETURNING %s`,
		setClause, len(args), equipmentColumns,
	)
	rec, err := scanEquipment(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("update equipment: %s does not exist", id)
	}
	return rec, nil
}

// GetRecipeWithSteps loads a recipe and its steps in position order, or
// (nil, nil) when the recipe does not exist.
func (s *PGStore) GetRecipeWithSteps(ctx context.Context, id uuid.UUID) (*core.Recipe, error) {
	var recipe core.Recipe
	err := s.db.QueryRow(ctx, `SELECT id, name FROM recipes WHERE id = $1`, id).
		Scan(&recipe.ID, &recipe.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, recipe_id, name, steam_required, power_required, cooling_required, chilled_water_required
		FROM recipe_steps WHERE recipe_id = $1 ORDER BY position, id`, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		step, err := scanStep(rows)
		if err != nil {
			return nil, err
		}
		recipe.Steps = append(recipe.Steps, *step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get recipe steps: %w", err)
	}
	return &recipe, nil
}

// UpdateRecipeStep overwrites all four requirement fields on a step.
func (s *PGStore) UpdateRecipeStep(ctx context.Context, id uuid.UUID, req core.StepRequirements) (*core.RecipeStep, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE recipe_steps
		SET steam_required = $1, power_required = $2, cooling_required = $3, chilled_water_required = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, recipe_id, name, steam_required, power_required, cooling_required, chilled_water_required`,
		req.SteamRequired, req.PowerRequired, req.CoolingRequired, req.ChilledWaterRequired, id)

	step, err := scanStep(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update recipe step: %s does not exist", id)
	}
	if err != nil {
		return nil, err
	}
	return step, nil
}

// scanEquipment scans one equipment row, mapping pgx.ErrNoRows to (nil, nil).
func scanEquipment(row pgx.Row) (*core.Equipment, error) {
	var rec core.Equipment
	err := row.Scan(&rec.ID, &rec.Tag, &rec.Name,
		&rec.MaxSteamLoad, &rec.MaxPowerLoad, &rec.MaxCoolingLoad, &rec.MaxChilledWaterLoad)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return &rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStep(row rowScanner) (*core.RecipeStep, error) {
	var step core.RecipeStep
	err := row.Scan(&step.ID, &step.RecipeID, &step.Name,
		&step.SteamRequired, &step.PowerRequired, &step.CoolingRequired, &step.ChilledWaterRequired)
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func numOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
