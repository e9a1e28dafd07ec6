package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Сегменты фрагмента
	SegInfo      Code = 1000
	SegEmpty     Code = 1001
	SegBadEscape Code = 1002

	// Грамматика
	GrmInfo              Code = 2000
	GrmUnknownLiteral    Code = 2001
	GrmUnexpectedSegment Code = 2002
	GrmMissingSegment    Code = 2003
	GrmScopeRequired     Code = 2004
	GrmScopeForbidden    Code = 2005

	// Значения
	ValInfo               Code = 3000
	ValBadSpreadsheetID   Code = 3001
	ValBadSpreadsheetName Code = 3002
	ValBadSelection       Code = 3003
	ValBadAnchor          Code = 3004
	ValBadPayload         Code = 3005
	ValBadNumber          Code = 3006
	ValBadPluginName      Code = 3007
	ValBadLabel           Code = 3008
	ValRejected           Code = 3009
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	SegInfo:      "Segment information",
	SegEmpty:     "Empty path segment",
	SegBadEscape: "Malformed percent escape",

	GrmInfo:              "Grammar information",
	GrmUnknownLiteral:    "Unknown literal segment",
	GrmUnexpectedSegment: "Unexpected trailing segment",
	GrmMissingSegment:    "Missing segment",
	GrmScopeRequired:     "Spreadsheet id and name required",
	GrmScopeForbidden:    "Spreadsheet id and name not allowed here",

	ValInfo:               "Value information",
	ValBadSpreadsheetID:   "Invalid spreadsheet id",
	ValBadSpreadsheetName: "Invalid spreadsheet name",
	ValBadSelection:       "Invalid selection",
	ValBadAnchor:          "Anchor not allowed for selection",
	ValBadPayload:         "Invalid action payload",
	ValBadNumber:          "Invalid number",
	ValBadPluginName:      "Invalid plugin name",
	ValBadLabel:           "Invalid label",
	ValRejected:           "Token rejected by constructor",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SEG%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("GRM%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("VAL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
