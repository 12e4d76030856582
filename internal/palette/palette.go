// Package palette holds the fixed color vocabulary of the renderer: five
// semantic role colors assigned to diagram nodes, a set of UI state tokens
// for structural text, and the escape-sequence emission that turns either
// into terminal output.
//
// All tables are package-level immutable values. Nothing here carries
// state between calls, so concurrent renders share the palette safely.
package palette

// Category names a color table entry. The five role categories come from
// the classifier; the token constants cover structural and stateful text.
// Both resolve through the same lookup.
type Category string

// Role categories assigned to diagram nodes.
const (
	CategoryAgent Category = "agent"
	CategoryTool  Category = "tool"
	CategoryHook  Category = "hook"
	CategoryParam Category = "param"
	CategoryEvent Category = "event"
	CategoryNone  Category = "none"
)

// UI state tokens for text that is not a node label.
const (
	TokenDefault    Category = "default"
	TokenDim        Category = "dim"
	TokenBright     Category = "bright"
	TokenBorder     Category = "border"
	TokenSurface    Category = "surface"
	TokenBackground Category = "background"
	TokenGreen      Category = "green"
	TokenRed        Category = "red"
	TokenYellow     Category = "yellow"
)

// Color is one palette entry. Hex and RGB describe the same value; Label
// is the human-readable name shown in the legend.
type Color struct {
	Hex   string
	RGB   [3]uint8
	Label string
}

// roleColors maps the five node categories to their colors.
var roleColors = map[Category]Color{
	CategoryAgent: {Hex: "#CBA6F7", RGB: [3]uint8{203, 166, 247}, Label: "Agent"},
	CategoryTool:  {Hex: "#89B4FA", RGB: [3]uint8{137, 180, 250}, Label: "Tool"},
	CategoryHook:  {Hex: "#FAB387", RGB: [3]uint8{250, 179, 135}, Label: "Hook"},
	CategoryParam: {Hex: "#94E2D5", RGB: [3]uint8{148, 226, 213}, Label: "Param"},
	CategoryEvent: {Hex: "#F9E2AF", RGB: [3]uint8{249, 226, 175}, Label: "Event"},
}

// uiColors maps state tokens to their colors.
var uiColors = map[Category]Color{
	TokenDefault:    {Hex: "#CDD6F4", RGB: [3]uint8{205, 214, 244}, Label: "Default"},
	TokenDim:        {Hex: "#6C7086", RGB: [3]uint8{108, 112, 134}, Label: "Dim"},
	TokenBright:     {Hex: "#FFFFFF", RGB: [3]uint8{255, 255, 255}, Label: "Bright"},
	TokenBorder:     {Hex: "#45475A", RGB: [3]uint8{69, 71, 90}, Label: "Border"},
	TokenSurface:    {Hex: "#313244", RGB: [3]uint8{49, 50, 68}, Label: "Surface"},
	TokenBackground: {Hex: "#1E1E2E", RGB: [3]uint8{30, 30, 46}, Label: "Background"},
	TokenGreen:      {Hex: "#A6E3A1", RGB: [3]uint8{166, 227, 161}, Label: "Green"},
	TokenRed:        {Hex: "#F38BA8", RGB: [3]uint8{243, 139, 168}, Label: "Red"},
	TokenYellow:     {Hex: "#F9E2AF", RGB: [3]uint8{249, 226, 175}, Label: "Yellow"},
}

// Lookup resolves a category or token to its color: role table first, then
// UI table, then the default UI color.
func Lookup(key Category) Color {
	if c, ok := roleColors[key]; ok {
		return c
	}
	if c, ok := uiColors[key]; ok {
		return c
	}
	return uiColors[TokenDefault]
}

// Roles returns the node categories in their fixed declaration order, for
// legend rendering and classifier iteration.
func Roles() []Category {
	return []Category{CategoryAgent, CategoryTool, CategoryHook, CategoryParam, CategoryEvent}
}
