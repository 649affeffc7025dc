package transaction

// CategoryStyle is display metadata for a known category. The analytics
// only care about category names; the color and icon are used by the
// terminal dashboard and card benefit lines.
type CategoryStyle struct {
	Color string // ANSI 256 color code
	Icon  string
}

// Categories is the table of known spending categories. Source rows may
// carry categories outside this table; they render with the fallback
// style.
var Categories = map[string]CategoryStyle{
	"Dining":                  {Color: "203", Icon: "🍽️"},
	"Groceries":               {Color: "77", Icon: "🛒"},
	"Transport":               {Color: "75", Icon: "🚗"},
	"Shopping":                {Color: "205", Icon: "🛍️"},
	"Entertainment":           {Color: "135", Icon: "🎬"},
	"Fitness":                 {Color: "43", Icon: "💪"},
	"Healthcare":              {Color: "210", Icon: "🏥"},
	"Insurance":               {Color: "245", Icon: "🛡️"},
	"Utilities":               {Color: "44", Icon: "⚡"},
	"Travel":                  {Color: "221", Icon: "✈️"},
	"Petrol":                  {Color: "149", Icon: "⛽"},
	"Online Services":         {Color: "170", Icon: "💻"},
	"Bills & Payments":        {Color: "249", Icon: "📄"},
	"Transfers":               {Color: "117", Icon: "🔄"},
	"Education":               {Color: "111", Icon: "📚"},
	"Government":              {Color: "196", Icon: "🏛️"},
	"Advertising & Marketing": {Color: "177", Icon: "📢"},
	IncomeCategory:            {Color: "78", Icon: "💰"},
	"ATM Cash":                {Color: "220", Icon: "🏧"},
	DefaultCategory:           {Color: "245", Icon: "📦"},
}

// CategoryColor returns the ANSI color for a category, falling back to
// a neutral grey for unknown names.
func CategoryColor(name string) string {
	if s, ok := Categories[name]; ok {
		return s.Color
	}

	return "245"
}

// CategoryIcon returns the icon for a category, falling back to a bullet.
func CategoryIcon(name string) string {
	if s, ok := Categories[name]; ok {
		return s.Icon
	}

	return "•"
}
