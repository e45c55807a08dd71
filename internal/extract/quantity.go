package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shelftrack/shelftrack/constants"
)

// ErrNoQuantity is returned when no amount+unit pattern matches. A soft miss:
// callers degrade to an absent quantity field.
var ErrNoQuantity = errors.New("no quantity found")

// Quantity is an extracted amount with its canonical unit tag.
type Quantity struct {
	Amount float64
	Unit   string
}

func (q Quantity) String() string {
	return strconv.FormatFloat(q.Amount, 'f', -1, 64) + q.Unit
}

var reQuantity = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(grams?|kilograms?|kg|g|liters?|litres?|milliliters?|millilitres?|ml|l|pieces?|pack of|packs?|sachets?|cans?|oz|lbs?)\b`)

// ExtractQuantity finds every amount+unit pair in text, canonicalizes units,
// deduplicates exact pairs and returns the one with the largest amount — on a
// package that is typically the net-content statement, while smaller numbers
// tend to be serving sizes or codes.
func ExtractQuantity(text string) (Quantity, error) {
	matches := reQuantity.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return Quantity{}, ErrNoQuantity
	}

	seen := make(map[Quantity]struct{}, len(matches))
	var candidates []Quantity
	for _, m := range matches {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		q := normalizeUnit(amount, m[2])
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		candidates = append(candidates, q)
	}
	if len(candidates) == 0 {
		return Quantity{}, ErrNoQuantity
	}

	best := candidates[0]
	for _, q := range candidates[1:] {
		if q.Amount > best.Amount {
			best = q
		}
	}
	return best, nil
}

// normalizeUnit maps a matched unit spelling onto its canonical tag, scaling
// the amount for kilogram and liter spellings. Unrecognized units pass
// through lowercased.
func normalizeUnit(amount float64, unit string) Quantity {
	switch u := strings.ToLower(unit); u {
	case "g", "gram", "grams":
		return Quantity{amount, constants.UnitGrams}
	case "kg", "kilogram", "kilograms":
		return Quantity{amount * 1000, constants.UnitGrams}
	case "l", "liter", "liters", "litre", "litres":
		return Quantity{amount * 1000, constants.UnitMilliliters}
	case "ml", "milliliter", "milliliters", "millilitre", "millilitres":
		return Quantity{amount, constants.UnitMilliliters}
	case "piece", "pieces":
		return Quantity{amount, constants.UnitPieces}
	case "pack of":
		return Quantity{amount, constants.UnitPack}
	case "sachet", "sachets":
		return Quantity{amount, constants.UnitSachet}
	case "can", "cans":
		return Quantity{amount, constants.UnitCan}
	default:
		return Quantity{amount, u}
	}
}
