package citest

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
)

// oracleHeader is the fixed column order for the oracle truth-table CSV:
// semicolon-separated, one header row.
var oracleHeader = []string{"X", "Y", "Conditioning Set", "(Conditional) Independence Holds"}

// oracleKey canonicalizes a query: the X/Y pair stored with X < Y
// lexicographically, and the conditioning set rendered in ascending order.
type oracleKey struct {
	x, y string
	z    string // names joined by "," in ascending order, "" if empty
}

// OracleTable is the parsed form of an oracle CSV: canonical query -> verdict.
type OracleTable map[oracleKey]bool

// ParseOracleCSV reads a semicolon-separated truth table of the form:
//
//	X;Y;Conditioning Set;(Conditional) Independence Holds
//	x0;x2;[];False
//	x0;x2;[x1];True
//
// Returns ErrOracleBadFormat if the header does not match exactly.
func ParseOracleCSV(r io.Reader) (OracleTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, citestErrorf("ParseOracleCSV", err)
	}
	if len(header) != len(oracleHeader) {
		return nil, citestErrorf("ParseOracleCSV", ErrOracleBadFormat)
	}
	for i, want := range oracleHeader {
		if strings.TrimSpace(header[i]) != want {
			return nil, citestErrorf("ParseOracleCSV", ErrOracleBadFormat)
		}
	}

	table := make(OracleTable)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, citestErrorf("ParseOracleCSV", err)
		}
		if len(row) != 4 {
			return nil, citestErrorf("ParseOracleCSV", ErrOracleBadFormat)
		}

		x, y := row[0], row[1]
		z, err := parseConditioningSet(row[2])
		if err != nil {
			return nil, citestErrorf("ParseOracleCSV", err)
		}
		holds, err := strconv.ParseBool(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, citestErrorf("ParseOracleCSV", ErrOracleBadFormat)
		}

		table[canonicalKey(x, y, z)] = holds
	}

	return table, nil
}

// parseConditioningSet parses the "[]" / "[a, b, c]" rendering of a
// conditioning set into an ordered slice of variable names.
func parseConditioningSet(field string) ([]string, error) {
	field = strings.TrimSpace(field)
	if len(field) < 2 || field[0] != '[' || field[len(field)-1] != ']' {
		return nil, ErrOracleBadFormat
	}
	inner := strings.TrimSpace(field[1 : len(field)-1])
	if inner == "" {
		return nil, nil
	}
	rawParts := strings.Split(inner, ",")
	out := make([]string, len(rawParts))
	for i, p := range rawParts {
		out[i] = strings.TrimSpace(p)
	}

	return out, nil
}

// canonicalKey builds the canonical lookup key: X<Y lexicographically, Z
// sorted ascending and joined by ",".
func canonicalKey(x, y string, z []string) oracleKey {
	if y < x {
		x, y = y, x
	}
	sorted := append([]string(nil), z...)
	sort.Strings(sorted)

	return oracleKey{x: x, y: y, z: strings.Join(sorted, ",")}
}

// OracleContract answers CI queries from a pre-parsed OracleTable, mapping
// vertex indices to variable names via Names (the i-th column's name).
type OracleContract struct {
	table OracleTable
	names []string
}

// NewOracleContract builds a Contract backed by table, with names[i] giving
// the variable name of vertex i (matching the oracle CSV's X/Y/Conditioning
// Set entries).
func NewOracleContract(table OracleTable, names []string) *OracleContract {
	return &OracleContract{table: table, names: names}
}

func (o *OracleContract) nameOf(op string, v int) (string, error) {
	if v < 0 || v >= len(o.names) {
		return "", citestErrorf(op, ErrOutOfRange)
	}

	return o.names[v], nil
}

// Indep implements Contract by delegating to CondIndep with an empty Z.
func (o *OracleContract) Indep(x, y int, level float64) (bool, error) {
	return o.CondIndep(x, y, nil, level)
}

// CondIndep implements Contract by a canonicalized table lookup. level is
// unused: the oracle is a pre-tabulated ground truth, not a significance
// test, and so answers deterministically regardless of threshold.
func (o *OracleContract) CondIndep(x, y int, z []int, level float64) (bool, error) {
	if x == y {
		return false, citestErrorf("CondIndep", ErrSameVertex)
	}
	xName, err := o.nameOf("CondIndep", x)
	if err != nil {
		return false, err
	}
	yName, err := o.nameOf("CondIndep", y)
	if err != nil {
		return false, err
	}
	zNames := make([]string, len(z))
	for i, v := range z {
		name, err := o.nameOf("CondIndep", v)
		if err != nil {
			return false, err
		}
		zNames[i] = name
	}

	key := canonicalKey(xName, yName, zNames)
	holds, ok := o.table[key]
	if !ok {
		return false, citestErrorf("CondIndep", ErrOracleEntryMissing)
	}

	return holds, nil
}
