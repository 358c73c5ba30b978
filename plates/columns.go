package plates

// The column layout of the force plate CSV export. Each plate's readings are a
// group of eight consecutive columns starting at its offset; this is the only
// place that layout is defined. Nothing in the file itself describes it, so if
// the vendor changes the export these numbers silently become wrong.

// Offsets is the first column of each plate's group, in plate order.
var Offsets = [NumPlates]int{4, 37, 15, 26}

// Columns within a group, relative to the plate's offset. Columns 3 and 4 are
// not used.
const (
	FieldForceZ = 0
	FieldForceX = 1
	FieldForceY = 2
	FieldTorque = 5
	FieldCopX   = 6
	FieldCopY   = 7
)

// MinColumns is the number of columns a row needs for every field of every
// plate to be present.
const MinColumns = 45

// Column returns the absolute (zero-indexed) column of a field for a plate.
func Column(plate int, field int) int {
	return Offsets[plate] + field
}
