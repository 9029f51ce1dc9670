// Package diskfiles plans the renaming of multi-disk media images to the
// standardized "{game}_d1", "{game}_d2" scheme.
//
// Planning is pure: the returned plan maps existing payload files to their
// new names and the organizer applies it. Ordering is case-insensitive by
// original name so the same archive always yields the same disk numbering.
package diskfiles
