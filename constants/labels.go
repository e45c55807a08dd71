package constants

import "strings"

// Label is the canonical output of the object classification model.
type Label string

// Stable values (the model emits these exact strings).
const (
	LabelBanana     Label = "Banana"
	LabelLemon      Label = "Lemon"
	LabelMango      Label = "Mango"
	LabelOrange     Label = "Orange"
	LabelPineapple  Label = "Pineapple"
	LabelTomato     Label = "Tomato"
	LabelWatermelon Label = "Watermelon"
	LabelApple      Label = "Apple"
	LabelPacked     Label = "Images_Packed"
)

var allLabels = []Label{
	LabelBanana,
	LabelLemon,
	LabelMango,
	LabelOrange,
	LabelPineapple,
	LabelTomato,
	LabelWatermelon,
	LabelApple,
	LabelPacked,
}

// IsPacked reports whether the label denotes a packaged item (label-bearing)
// as opposed to loose produce.
func (l Label) IsPacked() bool {
	return l == LabelPacked
}

// CanonicalLabel maps a raw model output string onto a known Label.
// Matching is case-insensitive; unknown strings return false.
func CanonicalLabel(input string) (Label, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	// common aliases seen in model exports
	aliases := map[string]Label{
		"packed":        LabelPacked,
		"packed item":   LabelPacked,
		"images_packed": LabelPacked,
	}
	if l, ok := aliases[normalized]; ok {
		return l, true
	}
	for _, l := range allLabels {
		if normalized == strings.ToLower(string(l)) {
			return l, true
		}
	}
	return "", false
}

// FreshnessClass is the output vocabulary of the freshness model.
type FreshnessClass string

const (
	FreshApples   FreshnessClass = "freshapples"
	FreshBanana   FreshnessClass = "freshbanana"
	FreshOranges  FreshnessClass = "freshoranges"
	RottenApples  FreshnessClass = "rottenapples"
	RottenBanana  FreshnessClass = "rottenbanana"
	RottenOranges FreshnessClass = "rottenoranges"
)

// BaseShelfLifeDays is the nominal shelf life for fresh produce classes,
// before confidence scaling. Rotten classes have no entry (zero days).
var BaseShelfLifeDays = map[FreshnessClass]int{
	FreshApples:  7,
	FreshBanana:  5,
	FreshOranges: 4,
}

// IsFresh reports whether the class denotes fresh produce.
func (c FreshnessClass) IsFresh() bool {
	return strings.HasPrefix(string(c), "fresh")
}
