package timetable

// slotMapping rewrites one standard two-hour block onto the compressed grid.
type slotMapping struct {
	fromStart Clock
	fromEnd   Clock
	toStart   Clock
	toEnd     Clock
}

// ramadanSlots maps the five standard 08:00-18:00 two-hour slots onto
// back-to-back 75-minute blocks. The table is exhaustive for the standard
// grid; anything else is left untouched.
var ramadanSlots = []slotMapping{
	{fromStart: Clock{8, 0}, fromEnd: Clock{10, 0}, toStart: Clock{8, 0}, toEnd: Clock{9, 15}},
	{fromStart: Clock{10, 0}, fromEnd: Clock{12, 0}, toStart: Clock{9, 15}, toEnd: Clock{10, 30}},
	{fromStart: Clock{12, 0}, fromEnd: Clock{14, 0}, toStart: Clock{10, 30}, toEnd: Clock{11, 45}},
	{fromStart: Clock{14, 0}, fromEnd: Clock{16, 0}, toStart: Clock{11, 45}, toEnd: Clock{13, 0}},
	{fromStart: Clock{16, 0}, fromEnd: Clock{18, 0}, toStart: Clock{13, 0}, toEnd: Clock{14, 15}},
}

// Remap translates a class time range onto the Ramadan grid. Lookup is an
// exact match on all four fields, first entry wins; ranges outside the table
// pass through unchanged so non-standard slot lengths are never compressed.
func Remap(start, end Clock) (Clock, Clock) {
	for _, slot := range ramadanSlots {
		if slot.fromStart == start && slot.fromEnd == end {
			return slot.toStart, slot.toEnd
		}
	}
	return start, end
}
