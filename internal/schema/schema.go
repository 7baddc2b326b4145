// Package schema defines the field specifications for each ingestion path.
//
// Plant spreadsheets rarely agree on column headers: one energy balance sheet
// says "Max Steam Load", the next "Steam_Load", a third "Steam (t/h)". Each
// FieldSpec maps one logical field to an ordered list of acceptable header
// aliases; the resolver takes the first alias present in a row. Alias order is
// fixed configuration, never inferred.
package schema

// Kind is the expected value kind for a logical field.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
)

// FieldSpec defines how one logical field is resolved from a raw row.
type FieldSpec struct {
	Field      string              // Logical field name (see constants below)
	Kind       Kind                // Expected value kind
	Aliases    []string            // Acceptable header labels, in match order
	Normalizer func(string) string // Optional transformation applied before coercion
}

// Logical field names for the equipment (energy balance) path.
const (
	FieldTag                 = "tag"
	FieldName                = "name"
	FieldMaxSteamLoad        = "maxSteamLoad"        // tonnes/hour
	FieldMaxPowerLoad        = "maxPowerLoad"        // kilowatts
	FieldMaxCoolingLoad      = "maxCoolingLoad"      // tonnes-refrigeration
	FieldMaxChilledWaterLoad = "maxChilledWaterLoad" // tonnes-refrigeration
)

// Logical field names for the utility requirement path.
const (
	FieldStepName             = "stepName"
	FieldSteamRequired        = "steamRequired"
	FieldPowerRequired        = "powerRequired"
	FieldCoolingRequired      = "coolingRequired"
	FieldChilledWaterRequired = "chilledWaterRequired"
)
