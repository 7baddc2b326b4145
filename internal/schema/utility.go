package schema

// UtilityRequirementSpecs covers recipe utility requirement sheets. The step
// name is a free-text hint matched against the recipe's persisted steps;
// requirement units mirror the equipment capacity units.
var UtilityRequirementSpecs = []FieldSpec{
	{
		Field:   FieldStepName,
		Kind:    KindText,
		Aliases: []string{"Step", "Step Name", "Process Step", "Operation", "Recipe Step"},
	},
	{
		Field:   FieldSteamRequired,
		Kind:    KindNumeric,
		Aliases: []string{"Steam Required", "Steam", "Steam_Required", "Steam (t/h)"},
	},
	{
		Field:   FieldPowerRequired,
		Kind:    KindNumeric,
		Aliases: []string{"Power Required", "Power", "Power_Required", "Power (kW)"},
	},
	{
		Field:   FieldCoolingRequired,
		Kind:    KindNumeric,
		Aliases: []string{"Cooling Required", "Cooling", "Cooling_Required", "Cooling (TR)"},
	},
	{
		Field:   FieldChilledWaterRequired,
		Kind:    KindNumeric,
		Aliases: []string{"Chilled Water Required", "Chilled Water", "Chilled_Water_Required", "CHW", "CHW (TR)"},
	},
}
