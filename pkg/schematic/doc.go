// Package schematic parses legacy Eeschema schematic text into an ordered,
// mutable component model and writes it back out.
//
// # Blocks
//
// A schematic file is a sequence of lines. Component instances live in
// blocks delimited by `$Comp` and `$EndComp`:
//
//	$Comp
//	L Device:R R3
//	U 1 1 5E7A1557
//	P 2650 1150
//	F 0 "R3" H 2650 1392 50  0000 C CNN
//	F 1 "100k" H 2650 1301 50  0000 C CNN
//	F 2 "Resistor_SMD:R_0805" H 2650 1350 50  0001 C CNN
//		1    2650 1150
//		1    0    0    -1
//	$EndComp
//
// Blocks whose designator starts with `#` are power flags. They are not
// tracked as components but their lines are kept for regeneration.
//
// # Lifecycle
//
// Parse scans the text, builds one Component per non-power block and runs
// an initial analysis. Resolve and Annotate mutate designators in place.
// Resolve leaves the document Dirty until Analyze is called again, while
// Annotate finishes with its own analysis pass. Generate rebuilds the full
// text: untouched lines and blocks are copied byte for byte, and only the
// blocks of components whose designator changed are regenerated.
//
// The k-th component block in the source always maps to the k-th entry of
// the component list. The list cannot be reordered or shrunk from outside
// the package; Component(i) is the checked accessor for positional lookups.
//
// A Document is not safe for concurrent use. Separate documents share no
// state and can be processed in parallel.
package schematic
