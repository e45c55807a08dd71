package constants

// Canonical unit tags for extracted package quantities.
// Stable values (store these exact strings in the workbook).
const (
	UnitGrams       = "g"
	UnitMilliliters = "ml"
	UnitPieces      = "pcs"
	UnitPack        = "pack"
	UnitSachet      = "sachet"
	UnitCan         = "can"
)
