package units

import "github.com/kailas-cloud/askbot/internal/domain/unit"

func u(abbr, singular, plural string) unit.Unit {
	return unit.Unit{Abbr: abbr, Singular: singular, Plural: plural}
}

func defaultMeasures() []measure {
	return []measure{
		{
			name: "length",
			units: []definition{
				{unit: u("mm", "millimeter", "millimeters"), system: metric, toAnchor: 1e-3},
				{unit: u("cm", "centimeter", "centimeters"), system: metric, toAnchor: 1e-2},
				{unit: u("m", "meter", "meters"), system: metric, toAnchor: 1},
				{unit: u("km", "kilometer", "kilometers"), system: metric, toAnchor: 1e3},
				{unit: u("in", "inch", "inches"), system: imperial, toAnchor: 1.0 / 12},
				{unit: u("yd", "yard", "yards"), system: imperial, toAnchor: 3},
				{unit: u("ft", "foot", "feet"), system: imperial, toAnchor: 1},
				{unit: u("mi", "mile", "miles"), system: imperial, toAnchor: 5280},
			},
			bridges: map[system]bridge{
				metric:   {ratio: 3.28084},
				imperial: {ratio: 1 / 3.28084},
			},
		},
		{
			name: "area",
			units: []definition{
				{unit: u("mm2", "square millimeter", "square millimeters"), system: metric, toAnchor: 1e-6},
				{unit: u("cm2", "square centimeter", "square centimeters"), system: metric, toAnchor: 1e-4},
				{unit: u("m2", "square meter", "square meters"), system: metric, toAnchor: 1},
				{unit: u("ha", "hectare", "hectares"), system: metric, toAnchor: 1e4},
				{unit: u("km2", "square kilometer", "square kilometers"), system: metric, toAnchor: 1e6},
				{unit: u("in2", "square inch", "square inches"), system: imperial, toAnchor: 1.0 / 144},
				{unit: u("yd2", "square yard", "square yards"), system: imperial, toAnchor: 9},
				{unit: u("ft2", "square foot", "square feet"), system: imperial, toAnchor: 1},
				{unit: u("ac", "acre", "acres"), system: imperial, toAnchor: 43560},
				{unit: u("mi2", "square mile", "square miles"), system: imperial, toAnchor: 27878400},
			},
			bridges: map[system]bridge{
				metric:   {ratio: 10.7639},
				imperial: {ratio: 1 / 10.7639},
			},
		},
		{
			name: "mass",
			units: []definition{
				{unit: u("mcg", "microgram", "micrograms"), system: metric, toAnchor: 1e-6},
				{unit: u("mg", "milligram", "milligrams"), system: metric, toAnchor: 1e-3},
				{unit: u("g", "gram", "grams"), system: metric, toAnchor: 1},
				{unit: u("kg", "kilogram", "kilograms"), system: metric, toAnchor: 1e3},
				{unit: u("mt", "metric tonne", "metric tonnes"), system: metric, toAnchor: 1e6},
				{unit: u("oz", "ounce", "ounces"), system: imperial, toAnchor: 1.0 / 16},
				{unit: u("lb", "pound", "pounds"), system: imperial, toAnchor: 1},
				{unit: u("t", "ton", "tons"), system: imperial, toAnchor: 2000},
			},
			bridges: map[system]bridge{
				metric:   {ratio: 1 / 453.592},
				imperial: {ratio: 453.592},
			},
		},
		{
			name: "volume",
			units: []definition{
				{unit: u("ml", "milliliter", "milliliters"), system: metric, toAnchor: 1e-3},
				{unit: u("cl", "centiliter", "centiliters"), system: metric, toAnchor: 1e-2},
				{unit: u("dl", "deciliter", "deciliters"), system: metric, toAnchor: 1e-1},
				{unit: u("l", "liter", "liters"), system: metric, toAnchor: 1},
				{unit: u("kl", "kiloliter", "kiloliters"), system: metric, toAnchor: 1e3},
				{unit: u("m3", "cubic meter", "cubic meters"), system: metric, toAnchor: 1e3},
				{unit: u("tsp", "teaspoon", "teaspoons"), system: imperial, toAnchor: 1.0 / 6},
				{unit: u("Tbs", "tablespoon", "tablespoons"), system: imperial, toAnchor: 1.0 / 2},
				{unit: u("fl-oz", "fluid ounce", "fluid ounces"), system: imperial, toAnchor: 1},
				{unit: u("cup", "cup", "cups"), system: imperial, toAnchor: 8},
				{unit: u("pnt", "pint", "pints"), system: imperial, toAnchor: 16},
				{unit: u("qt", "quart", "quarts"), system: imperial, toAnchor: 32},
				{unit: u("gal", "gallon", "gallons"), system: imperial, toAnchor: 128},
			},
			bridges: map[system]bridge{
				metric:   {ratio: 33.8140226},
				imperial: {ratio: 1 / 33.8140226},
			},
		},
		{
			name: "temperature",
			units: []definition{
				{unit: u("C", "degree Celsius", "degrees Celsius"), system: metric, toAnchor: 1},
				{unit: u("K", "degree Kelvin", "degrees Kelvin"), system: metric, toAnchor: 1, anchorShift: 273.15},
				{unit: u("F", "degree Fahrenheit", "degrees Fahrenheit"), system: imperial, toAnchor: 1},
				{unit: u("R", "degree Rankine", "degrees Rankine"), system: imperial, toAnchor: 1, anchorShift: 459.67},
			},
			bridges: map[system]bridge{
				metric:   {transform: func(c float64) float64 { return c/(5.0/9) + 32 }},
				imperial: {transform: func(f float64) float64 { return (f - 32) * (5.0 / 9) }},
			},
		},
		{
			name: "time",
			units: []definition{
				{unit: u("ns", "nanosecond", "nanoseconds"), system: metric, toAnchor: 1e-9},
				{unit: u("ms", "millisecond", "milliseconds"), system: metric, toAnchor: 1e-3},
				{unit: u("s", "second", "seconds"), system: metric, toAnchor: 1},
				{unit: u("min", "minute", "minutes"), system: metric, toAnchor: 60},
				{unit: u("h", "hour", "hours"), system: metric, toAnchor: 3600},
				{unit: u("d", "day", "days"), system: metric, toAnchor: 86400},
				{unit: u("week", "week", "weeks"), system: metric, toAnchor: 604800},
				{unit: u("month", "month", "months"), system: metric, toAnchor: 2629800},
				{unit: u("year", "year", "years"), system: metric, toAnchor: 31557600},
			},
		},
		{
			name: "speed",
			units: []definition{
				{unit: u("m/s", "metre per second", "metres per second"), system: metric, toAnchor: 3.6},
				{unit: u("km/h", "kilometre per hour", "kilometres per hour"), system: metric, toAnchor: 1},
				{unit: u("m/h", "mile per hour", "miles per hour"), system: imperial, toAnchor: 1},
				{unit: u("knot", "knot", "knots"), system: imperial, toAnchor: 1.150779},
				{unit: u("ft/s", "foot per second", "feet per second"), system: imperial, toAnchor: 0.681818},
			},
			bridges: map[system]bridge{
				metric:   {ratio: 1 / 1.609344},
				imperial: {ratio: 1.609344},
			},
		},
		{
			name: "digital",
			units: []definition{
				{unit: u("B", "byte", "bytes"), system: metric, toAnchor: 8},
				{unit: u("KB", "kilobyte", "kilobytes"), system: metric, toAnchor: 8192},
				{unit: u("MB", "megabyte", "megabytes"), system: metric, toAnchor: 8388608},
				{unit: u("GB", "gigabyte", "gigabytes"), system: metric, toAnchor: 8589934592},
				{unit: u("TB", "terabyte", "terabytes"), system: metric, toAnchor: 8796093022208},
				{unit: u("b", "bit", "bits"), system: metric, toAnchor: 1},
				{unit: u("Kb", "kilobit", "kilobits"), system: metric, toAnchor: 1024},
				{unit: u("Mb", "megabit", "megabits"), system: metric, toAnchor: 1048576},
				{unit: u("Gb", "gigabit", "gigabits"), system: metric, toAnchor: 1073741824},
			},
		},
	}
}
