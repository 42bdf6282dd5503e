package covergen

// Palette is one fixed color scheme: background gradient stops plus exactly
// three accent colors used for shapes and curves.
type Palette struct {
	Name       string
	Background []RGBA // at least two gradient stops
	Accents    [3]RGBA
}

// palettes is the fixed, ordered palette table. Index is taken from the
// content hash modulo 10, so the table length must stay at ten entries.
var palettes = [10]Palette{
	{
		Name:       "dusk",
		Background: []RGBA{Hex("#1a1a2e"), Hex("#16213e")},
		Accents:    [3]RGBA{Hex("#e94560"), Hex("#0f3460"), Hex("#533483")},
	},
	{
		Name:       "meadow",
		Background: []RGBA{Hex("#134e5e"), Hex("#71b280")},
		Accents:    [3]RGBA{Hex("#f9d423"), Hex("#fc913a"), Hex("#ff4e50")},
	},
	{
		Name:       "ember",
		Background: []RGBA{Hex("#2c061f"), Hex("#731a3c"), Hex("#d1486e")},
		Accents:    [3]RGBA{Hex("#f6c667"), Hex("#f2f2f2"), Hex("#e36488")},
	},
	{
		Name:       "tide",
		Background: []RGBA{Hex("#0f2027"), Hex("#2c5364")},
		Accents:    [3]RGBA{Hex("#00b4db"), Hex("#7fdbff"), Hex("#ffffff")},
	},
	{
		Name:       "orchard",
		Background: []RGBA{Hex("#355c3a"), Hex("#a8c686")},
		Accents:    [3]RGBA{Hex("#f4e285"), Hex("#f4a259"), Hex("#bc4b51")},
	},
	{
		Name:       "slate",
		Background: []RGBA{Hex("#232526"), Hex("#414345")},
		Accents:    [3]RGBA{Hex("#ff6b6b"), Hex("#feca57"), Hex("#48dbfb")},
	},
	{
		Name:       "lavender",
		Background: []RGBA{Hex("#41295a"), Hex("#2f0743")},
		Accents:    [3]RGBA{Hex("#c779d0"), Hex("#feac5e"), Hex("#4bc0c8")},
	},
	{
		Name:       "paper",
		Background: []RGBA{Hex("#f3f3f2"), Hex("#d9d4cf")},
		Accents:    [3]RGBA{Hex("#bc002d"), Hex("#2d2926"), Hex("#8b8178")},
	},
	{
		Name:       "reef",
		Background: []RGBA{Hex("#001f3f"), Hex("#005f73"), Hex("#0a9396")},
		Accents:    [3]RGBA{Hex("#94d2bd"), Hex("#ee9b00"), Hex("#e9d8a6")},
	},
	{
		Name:       "aurora",
		Background: []RGBA{Hex("#000428"), Hex("#004e92")},
		Accents:    [3]RGBA{Hex("#00ff87"), Hex("#60efff"), Hex("#f9f871")},
	},
}

// PaletteAt returns the palette for an index in [0, 9]. The Parameter Mapper
// always produces an in-range index; anything else is a caller bug and
// panics via the bounds check.
func PaletteAt(index int) Palette {
	return palettes[index]
}
