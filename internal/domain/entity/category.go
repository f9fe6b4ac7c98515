package entity

// WasteCategory is the fixed set of categories the classifier can resolve.
// Point values and tip blocks are static configuration keyed by category.
type WasteCategory string

const (
	CategoryEwaste        WasteCategory = "ewaste"
	CategoryPlastic       WasteCategory = "plastic"
	CategoryBiowaste      WasteCategory = "biowaste"
	CategoryCardboard     WasteCategory = "cardboard"
	CategoryPaper         WasteCategory = "paper"
	CategoryGlass         WasteCategory = "glass"
	CategoryMetal         WasteCategory = "metal"
	CategoryOrganic       WasteCategory = "organic"
	CategoryOther         WasteCategory = "other"
	CategoryPlasticOther  WasteCategory = "plasticOther"
	CategoryPlasticPete   WasteCategory = "plasticPete"
	CategoryPlasticHdpe   WasteCategory = "plasticHdpe"
	CategoryPlasticPp     WasteCategory = "plasticPp"
	CategoryPlasticPs     WasteCategory = "plasticPs"
	CategoryRecyclable    WasteCategory = "recyclable"
	CategoryCompostable   WasteCategory = "compostable"
	CategoryNonRecyclable WasteCategory = "non-recyclable"
)

// AllCategories in presentation order.
var AllCategories = []WasteCategory{
	CategoryEwaste,
	CategoryPlastic,
	CategoryBiowaste,
	CategoryCardboard,
	CategoryPaper,
	CategoryGlass,
	CategoryMetal,
	CategoryOrganic,
	CategoryOther,
	CategoryPlasticOther,
	CategoryPlasticPete,
	CategoryPlasticHdpe,
	CategoryPlasticPp,
	CategoryPlasticPs,
	CategoryRecyclable,
	CategoryCompostable,
	CategoryNonRecyclable,
}

func (c WasteCategory) Valid() bool {
	switch c {
	case CategoryEwaste, CategoryPlastic, CategoryBiowaste, CategoryCardboard,
		CategoryPaper, CategoryGlass, CategoryMetal, CategoryOrganic,
		CategoryOther, CategoryPlasticOther, CategoryPlasticPete,
		CategoryPlasticHdpe, CategoryPlasticPp, CategoryPlasticPs,
		CategoryRecyclable, CategoryCompostable, CategoryNonRecyclable:
		return true
	}
	return false
}

var categoryPoints = map[WasteCategory]int{
	CategoryEwaste:        150,
	CategoryPlastic:       50,
	CategoryBiowaste:      40,
	CategoryCardboard:     80,
	CategoryPaper:         60,
	CategoryGlass:         30,
	CategoryMetal:         100,
	CategoryOrganic:       40,
	CategoryOther:         20,
	CategoryPlasticOther:  50,
	CategoryPlasticPete:   50,
	CategoryPlasticHdpe:   50,
	CategoryPlasticPp:     50,
	CategoryPlasticPs:     50,
	CategoryRecyclable:    50,
	CategoryCompostable:   40,
	CategoryNonRecyclable: 10,
}

// PointsFor returns the award for a category. Unrecognized categories fall
// back to the "other" value so legacy records still score.
func PointsFor(category WasteCategory) int {
	if points, ok := categoryPoints[category]; ok {
		return points
	}
	return categoryPoints[CategoryOther]
}

// CategoryCounters holds one cumulative counter per category variant. The
// counters are explicit fields so a new category is a compile-time change,
// not a new map key that half the code forgets.
type CategoryCounters struct {
	Ewaste        int `json:"ewaste" firestore:"ewaste"`
	Plastic       int `json:"plastic" firestore:"plastic"`
	Biowaste      int `json:"biowaste" firestore:"biowaste"`
	Cardboard     int `json:"cardboard" firestore:"cardboard"`
	Paper         int `json:"paper" firestore:"paper"`
	Glass         int `json:"glass" firestore:"glass"`
	Metal         int `json:"metal" firestore:"metal"`
	Organic       int `json:"organic" firestore:"organic"`
	Other         int `json:"other" firestore:"other"`
	PlasticOther  int `json:"plasticOther" firestore:"plasticOther"`
	PlasticPete   int `json:"plasticPete" firestore:"plasticPete"`
	PlasticHdpe   int `json:"plasticHdpe" firestore:"plasticHdpe"`
	PlasticPp     int `json:"plasticPp" firestore:"plasticPp"`
	PlasticPs     int `json:"plasticPs" firestore:"plasticPs"`
	Recyclable    int `json:"recyclable" firestore:"recyclable"`
	Compostable   int `json:"compostable" firestore:"compostable"`
	NonRecyclable int `json:"nonRecyclable" firestore:"nonRecyclable"`
}

// Increment bumps the counter for the given category. Returns false when the
// category has no counter slot, in which case nothing changes.
func (cc *CategoryCounters) Increment(category WasteCategory) bool {
	switch category {
	case CategoryEwaste:
		cc.Ewaste++
	case CategoryPlastic:
		cc.Plastic++
	case CategoryBiowaste:
		cc.Biowaste++
	case CategoryCardboard:
		cc.Cardboard++
	case CategoryPaper:
		cc.Paper++
	case CategoryGlass:
		cc.Glass++
	case CategoryMetal:
		cc.Metal++
	case CategoryOrganic:
		cc.Organic++
	case CategoryOther:
		cc.Other++
	case CategoryPlasticOther:
		cc.PlasticOther++
	case CategoryPlasticPete:
		cc.PlasticPete++
	case CategoryPlasticHdpe:
		cc.PlasticHdpe++
	case CategoryPlasticPp:
		cc.PlasticPp++
	case CategoryPlasticPs:
		cc.PlasticPs++
	case CategoryRecyclable:
		cc.Recyclable++
	case CategoryCompostable:
		cc.Compostable++
	case CategoryNonRecyclable:
		cc.NonRecyclable++
	default:
		return false
	}
	return true
}

// Get returns the counter value for a category, 0 for unknown categories.
func (cc CategoryCounters) Get(category WasteCategory) int {
	switch category {
	case CategoryEwaste:
		return cc.Ewaste
	case CategoryPlastic:
		return cc.Plastic
	case CategoryBiowaste:
		return cc.Biowaste
	case CategoryCardboard:
		return cc.Cardboard
	case CategoryPaper:
		return cc.Paper
	case CategoryGlass:
		return cc.Glass
	case CategoryMetal:
		return cc.Metal
	case CategoryOrganic:
		return cc.Organic
	case CategoryOther:
		return cc.Other
	case CategoryPlasticOther:
		return cc.PlasticOther
	case CategoryPlasticPete:
		return cc.PlasticPete
	case CategoryPlasticHdpe:
		return cc.PlasticHdpe
	case CategoryPlasticPp:
		return cc.PlasticPp
	case CategoryPlasticPs:
		return cc.PlasticPs
	case CategoryRecyclable:
		return cc.Recyclable
	case CategoryCompostable:
		return cc.Compostable
	case CategoryNonRecyclable:
		return cc.NonRecyclable
	}
	return 0
}
