package schema

// EnergyBalanceSpecs covers the equipment energy balance sheets exported from
// plant design workbooks. Unit conventions: steam in t/h, power in kW, cooling
// and chilled water in TR.
var EnergyBalanceSpecs = []FieldSpec{
	{
		Field:   FieldTag,
		Kind:    KindText,
		Aliases: []string{"Tag", "Equipment Tag", "Tag No", "Tag No.", "Tag Number"},
	},
	{
		Field:   FieldName,
		Kind:    KindText,
		Aliases: []string{"Equipment Name", "Equipment", "Name", "Description"},
	},
	{
		Field:   FieldMaxSteamLoad,
		Kind:    KindNumeric,
		Aliases: []string{"Max Steam Load", "Steam Load", "Steam_Load", "Max Steam (t/h)", "Steam (t/h)", "Steam (TPH)"},
	},
	{
		Field:   FieldMaxPowerLoad,
		Kind:    KindNumeric,
		Aliases: []string{"Max Power Load", "Power Load", "Power_Load", "Max Power (kW)", "Power (kW)", "Connected Load (kW)"},
	},
	{
		Field:   FieldMaxCoolingLoad,
		Kind:    KindNumeric,
		Aliases: []string{"Max Cooling Load", "Cooling Load", "Cooling_Load", "Max Cooling (TR)", "Cooling (TR)", "CW Load"},
	},
	{
		Field:   FieldMaxChilledWaterLoad,
		Kind:    KindNumeric,
		Aliases: []string{"Max Chilled Water Load", "Chilled Water Load", "Chilled_Water_Load", "CHW Load", "Chilled Water (TR)", "CHW (TR)"},
	},
}
