package sheet

import "fmt"

// ValueType is the value type a cell is validated against.
type ValueType uint8

const (
	ValueTypeBoolean ValueType = iota + 1
	ValueTypeDate
	ValueTypeDateTime
	ValueTypeNumber
	ValueTypeText
	ValueTypeTime
)

var valueTypeNames = map[ValueType]string{
	ValueTypeBoolean:  "boolean",
	ValueTypeDate:     "date",
	ValueTypeDateTime: "date-time",
	ValueTypeNumber:   "number",
	ValueTypeText:     "text",
	ValueTypeTime:     "time",
}

// ParseValueType accepts the lower-case names above.
func ParseValueType(s string) (ValueType, error) {
	for vt, name := range valueTypeNames {
		if name == s {
			return vt, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown value type %q", ErrBadReference, s)
}

func (vt ValueType) String() string {
	if name, ok := valueTypeNames[vt]; ok {
		return name
	}
	return "unknown"
}
