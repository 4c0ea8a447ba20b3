package services

// Quote statuses as shown on the dashboard and quote list.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusPending  = "pending"
	QuoteStatusAccepted = "accepted"
	QuoteStatusDeclined = "declined"
	QuoteStatusExpired  = "expired"
)

// Client decisions on individual quote items. Transitions are free-form: a
// client can change their mind about any item until the quote is finalised.
const (
	ItemStatusPending  = "pending"
	ItemStatusAccepted = "accepted"
	ItemStatusDeclined = "declined"
	ItemStatusModified = "modified"
)

// Line item categories.
const (
	CategoryLabour        = "labour"
	CategoryMaterials     = "materials"
	CategoryPlant         = "plant"
	CategorySubcontractor = "subcontractor"
	CategoryOther         = "other"
)

// ItemCategory pairs a category value with its display label.
type ItemCategory struct {
	Value string
	Label string
}

// ItemCategories is the ordered list of selectable line item categories.
var ItemCategories = []ItemCategory{
	{Value: CategoryLabour, Label: "Labour"},
	{Value: CategoryMaterials, Label: "Materials"},
	{Value: CategoryPlant, Label: "Plant/Equipment"},
	{Value: CategorySubcontractor, Label: "Subcontractor"},
	{Value: CategoryOther, Label: "Other"},
}

// ItemUnit pairs a unit value with its display label.
type ItemUnit struct {
	Value string
	Label string
}

// ItemUnits is the ordered list of selectable units of measure.
var ItemUnits = []ItemUnit{
	{Value: "each", Label: "Each"},
	{Value: "hour", Label: "Hour"},
	{Value: "day", Label: "Day"},
	{Value: "metre", Label: "Metre"},
	{Value: "square_metre", Label: "m²"},
	{Value: "linear_metre", Label: "Linear m"},
}

// TradeCategory describes a UK trade with the regulations that apply to it.
type TradeCategory struct {
	Key           string
	Name          string
	Regulations   []string
	VATRate       float64
	CISApplicable bool
}

// TradeCategories is the ordered list of supported UK trades.
var TradeCategories = []TradeCategory{
	{
		Key:         "electrical",
		Name:        "Electrical",
		Regulations: []string{"Part P", "BS 7671", "NICEIC/NAPIT"},
		VATRate:     20,
	},
	{
		Key:         "plumbing",
		Name:        "Plumbing & Heating",
		Regulations: []string{"Gas Safe (if applicable)", "Water Regulations"},
		VATRate:     20,
	},
	{
		Key:           "construction",
		Name:          "Construction",
		Regulations:   []string{"Building Regulations", "CDM Regulations"},
		VATRate:       20,
		CISApplicable: true,
	},
	{
		Key:         "roofing",
		Name:        "Roofing",
		Regulations: []string{"Building Regulations", "Working at Height Regulations"},
		VATRate:     20,
	},
	{
		Key:         "carpentry",
		Name:        "Carpentry & Joinery",
		Regulations: []string{"Building Regulations (structural work)"},
		VATRate:     20,
	},
}

// TradeCategoryByKey looks up a trade category. The second return value is
// false for unknown keys.
func TradeCategoryByKey(key string) (TradeCategory, bool) {
	for _, tc := range TradeCategories {
		if tc.Key == key {
			return tc, true
		}
	}
	return TradeCategory{}, false
}

// UKSuppliers lists common UK merchants by trade, shown as material
// sourcing suggestions in the quote builder.
var UKSuppliers = map[string][]string{
	"electrical": {"CEF", "Rexel", "Edmundson Electrical", "TLC Electrical"},
	"plumbing":   {"Plumb Center", "City Plumbing", "Travis Perkins", "Wickes"},
	"general":    {"Screwfix", "Toolstation", "B&Q Trade Point", "Selco"},
	"trade":      {"Travis Perkins", "Jewson", "Buildbase", "Covers Timber & Builders Merchants"},
}

// UKCertifications lists professional accreditations by field, offered as
// choices on the settings page.
var UKCertifications = map[string][]string{
	"electrical": {
		"NICEIC Approved Contractor",
		"NAPIT Registered",
		"ECA Member",
		"SELECT Approved (Scotland)",
	},
	"gas": {
		"Gas Safe Registered",
		"OFTEC Registered (Oil)",
	},
	"construction": {
		"CHAS Accredited",
		"Constructionline Gold",
		"SafeContractor Approved",
		"CSCS Card Holder",
	},
}
