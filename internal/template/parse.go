package template

import (
	"fmt"
	"strconv"
	"strings"

	"bulkrename/internal/services"
)

// ParseBlockSpec converts the compact CLI form into a Block:
//
//	literal:<text>
//	number:<width>:<start>:<step>
//	date:<strftime format>
//	original
//
// Literal text and date formats are taken verbatim after the first colon, so
// both may contain further colons.
func ParseBlockSpec(spec string) (Block, error) {
	kind, rest, hasRest := strings.Cut(spec, ":")
	switch BlockKind(strings.ToLower(strings.TrimSpace(kind))) {
	case KindLiteral:
		if !hasRest {
			return Block{}, parseErr(spec, "literal requires text after the colon")
		}
		return Literal(rest), nil
	case KindNumber:
		if !hasRest {
			return Block{}, parseErr(spec, "number requires width:start:step")
		}
		parts := strings.Split(rest, ":")
		if len(parts) != 3 {
			return Block{}, parseErr(spec, "number requires width:start:step")
		}
		width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || width < 0 {
			return Block{}, parseErr(spec, "width must be a non-negative integer")
		}
		start, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return Block{}, parseErr(spec, "start must be an integer")
		}
		step, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
		if err != nil {
			return Block{}, parseErr(spec, "step must be an integer")
		}
		return Number(width, start, step), nil
	case KindDate:
		if !hasRest || rest == "" {
			return Block{}, parseErr(spec, "date requires a strftime format")
		}
		return Date(rest), nil
	case KindOriginal:
		if hasRest && rest != "" {
			return Block{}, parseErr(spec, "original takes no arguments")
		}
		return Original(), nil
	default:
		return Block{}, parseErr(spec, "unknown block kind (expected literal, number, date, or original)")
	}
}

// ParseBlockSpecs parses an ordered list of compact block specs.
func ParseBlockSpecs(specs []string) ([]Block, error) {
	blocks := make([]Block, 0, len(specs))
	for _, spec := range specs {
		block, err := ParseBlockSpec(spec)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func parseErr(spec, message string) error {
	return services.Wrap(services.ErrValidation, "template", "parse block",
		fmt.Sprintf("%s: %q", message, spec), nil)
}
