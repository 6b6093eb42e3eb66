// pkg/testutil/schematic.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Build legacy schematic text inline for tests

package testutil

import (
	"fmt"
	"strings"
)

// Header is the preamble Eeschema writes before the first component
const Header = `EESchema Schematic File Version 4
EELAYER 30 0
EELAYER END
$Descr A4 11693 8268
encoding utf-8
Sheet 1 1
Title "Test Board"
Date ""
Rev ""
Comp ""
$EndDescr`

// Footer closes a schematic file
const Footer = `$EndSCHEMATC`

// Part describes one component block
type Part struct {
	Symbol    string // defaults to "Device:R"
	Ref       string
	Value     string
	Footprint string // defaults to "Resistor_SMD:R_0805_2012Metric"
	Unit      int    // defaults to 1
	Timestamp string // defaults to a value derived from the position
	X, Y      int
}

// Block renders a part as a $Comp ... $EndComp block without trailing newline
func Block(p Part) string {
	if p.Symbol == "" {
		p.Symbol = "Device:R"
	}
	if p.Footprint == "" {
		p.Footprint = "Resistor_SMD:R_0805_2012Metric"
	}
	if p.Unit == 0 {
		p.Unit = 1
	}
	if p.X == 0 && p.Y == 0 {
		p.X, p.Y = 2650, 1150
	}
	if p.Timestamp == "" {
		p.Timestamp = fmt.Sprintf("5E7A%04X", (p.X+p.Y)%0x10000)
	}

	lines := []string{
		"$Comp",
		fmt.Sprintf("L %s %s", p.Symbol, p.Ref),
		fmt.Sprintf("U %d 1 %s", p.Unit, p.Timestamp),
		fmt.Sprintf("P %d %d", p.X, p.Y),
		fmt.Sprintf(`F 0 "%s" H %d %d 50  0000 C CNN`, p.Ref, p.X, p.Y+242),
		fmt.Sprintf(`F 1 "%s" H %d %d 50  0000 C CNN`, p.Value, p.X, p.Y+151),
		fmt.Sprintf(`F 2 "%s" V %d %d 50  0001 C CNN`, p.Footprint, p.X-70, p.Y),
		fmt.Sprintf(`F 3 "~" H %d %d 50  0001 C CNN`, p.X, p.Y),
		fmt.Sprintf("\t%d    %d %d", p.Unit, p.X, p.Y),
		"\t1    0    0    -1  ",
		"$EndComp",
	}
	return strings.Join(lines, "\n")
}

// PowerFlag renders a power symbol block such as #PWR01
func PowerFlag(ref, net string) string {
	lines := []string{
		"$Comp",
		fmt.Sprintf("L power:%s %s", net, ref),
		"U 1 1 5E7B0000",
		"P 1500 1000",
		fmt.Sprintf(`F 0 "%s" H 1500 750 50  0001 C CNN`, ref),
		fmt.Sprintf(`F 1 "%s" H 1500 850 50  0000 C CNN`, net),
		`F 2 "" H 1500 1000 50  0001 C CNN`,
		`F 3 "" H 1500 1000 50  0001 C CNN`,
		"\t1    1500 1000",
		"\t-1   0    0    1   ",
		"$EndComp",
	}
	return strings.Join(lines, "\n")
}

// Schematic wraps blocks in a header and footer, one block per entry,
// newline terminated
func Schematic(blocks ...string) string {
	parts := append([]string{Header}, blocks...)
	parts = append(parts, "Wire Wire Line\n\t2650 1300 2650 1500", Footer)
	return strings.Join(parts, "\n") + "\n"
}

// Parts renders each part as a block and wraps them with Schematic
func Parts(parts ...Part) string {
	blocks := make([]string, len(parts))
	for i, p := range parts {
		blocks[i] = Block(p)
	}
	return Schematic(blocks...)
}
