package layout

import (
	"strconv"
	"strings"
)

const (
	blockSeparator = "\n\n"
	modeLine       = 1
	transformLine  = 9
)

// Parse reads the output of `hyprctl monitors`.
//
// Monitor blocks are separated by a blank line. A block whose first line is
// empty ends the list, anything after it is ignored. Any malformed block fails
// the whole parse and no monitors are returned.
func Parse(raw string) ([]MonitorInfo, error) {
	monitors := []MonitorInfo{}

	for i, block := range strings.Split(raw, blockSeparator) {
		lines := strings.Split(block, "\n")
		if lines[0] == "" {
			break
		}

		m, err := parseBlock(i, lines)
		if err != nil {
			return nil, err
		}
		monitors = append(monitors, m)
	}

	return monitors, nil
}

func parseBlock(block int, lines []string) (MonitorInfo, error) {
	m := MonitorInfo{}

	fields := strings.Fields(lines[0])
	if len(fields) < 2 {
		return m, &ParseError{Block: block, Field: "name", Fragment: lines[0]}
	}
	m.Name = fields[1]

	if len(lines) <= transformLine {
		return m, &ParseError{
			Block:    block,
			Field:    "block",
			Fragment: strings.Join(lines, "\n"),
			Err:      errMissingLines,
		}
	}

	var err error
	m.Dimensions, m.Position, err = parseMode(block, lines[modeLine])
	if err != nil {
		return m, err
	}

	m.Rotation, err = parseTransform(block, lines[transformLine])
	return m, err
}

// Parses "<width>x<height>@<refresh> at <x>x<y>", discarding the refresh rate.
func parseMode(block int, line string) (Vector, Vector, error) {
	parts := strings.SplitN(line, " at ", 2)
	if len(parts) != 2 {
		return Vector{}, Vector{}, &ParseError{Block: block, Field: "mode", Fragment: line}
	}

	size := strings.TrimSpace(parts[0])
	if at := strings.IndexByte(size, '@'); at >= 0 {
		size = size[:at]
	}

	dimensions, err := parseVector(block, "dimensions", size)
	if err != nil {
		return Vector{}, Vector{}, err
	}

	position, err := parseVector(block, "position", strings.TrimSpace(parts[1]))
	if err != nil {
		return Vector{}, Vector{}, err
	}

	return dimensions, position, nil
}

func parseVector(block int, field, s string) (Vector, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return Vector{}, &ParseError{Block: block, Field: field, Fragment: s}
	}

	x, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Vector{}, &ParseError{Block: block, Field: field, Fragment: s, Err: err}
	}
	y, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return Vector{}, &ParseError{Block: block, Field: field, Fragment: s, Err: err}
	}

	return Vector{X: uint16(x), Y: uint16(y)}, nil
}

func parseTransform(block int, line string) (Rotation, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Rotate0, &ParseError{Block: block, Field: "transform", Fragment: line}
	}

	code, err := strconv.Atoi(strings.TrimSpace(line[colon+1:]))
	if err != nil {
		// Unknown transforms are treated as unrotated, same as out of range codes
		return Rotate0, nil
	}
	return RotationFromTransform(code), nil
}
