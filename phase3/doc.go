// Package phase3 implements the sweep line of spec.md §4.7–§4.8: a column of
// 3×3 MetaModules that cleans and advances westward, pulling the scaffolding
// into a left-compacted Histogram.
//
// MetaModule's solid/clean/separator predicates and the Clean operation's
// west-row-shortest script are grounded on structures/metamodule.py's
// is_solid/is_clean/is_separator and clean() methods (the "shortest west
// row" case, reproduced as the (rows[0]>rows[1]<=rows[2]) trivial-case
// script). The source's advance() method is an unimplemented stub (it only
// locates W1/W2/W3 and rebuilds the metamodule); this package supplies the
// eight-case move scripts advance.go documents (one table, used for every
// metamodule; there are no separate trailing-metamodule scripts) as the concrete
// consequence of "shift the window one column west, backfilling from
// whichever of W1/W2/W3 are occupied" (see DESIGN.md for the resulting
// table). Histogram.CompactToLeft is grounded on structures/histogram.py's
// compact_to_left.
package phase3
