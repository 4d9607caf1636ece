package domain

// Recognized catalog column names. Matching is exact after trimming.
const (
	FieldIndex       = "INDEX"
	FieldName        = "NAME"
	FieldCategory    = "CATEGORY"
	FieldSize        = "SIZE"
	FieldDescription = "DESCRIPTION"
	FieldMainLink    = "MAIN_LINK"
)

// Record represents one row of the dataset catalog
type Record struct {
	Index       string            `json:"INDEX" msgpack:"index"`
	Name        string            `json:"NAME" msgpack:"name"`
	Category    string            `json:"CATEGORY" msgpack:"category"`
	Size        string            `json:"SIZE" msgpack:"size"`
	Description string            `json:"DESCRIPTION" msgpack:"description"`
	MainLink    string            `json:"MAIN_LINK" msgpack:"main_link"`
	Extra       map[string]string `json:"extra,omitempty" msgpack:"extra,omitempty"` // Unrecognized columns
}

// Set assigns a column value by header name
func (r *Record) Set(column, value string) {
	switch column {
	case FieldIndex:
		r.Index = value
	case FieldName:
		r.Name = value
	case FieldCategory:
		r.Category = value
	case FieldSize:
		r.Size = value
	case FieldDescription:
		r.Description = value
	case FieldMainLink:
		r.MainLink = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[column] = value
	}
}

// Field returns a column value by header name, or "" when the column is absent.
func (r Record) Field(column string) string {
	switch column {
	case FieldIndex:
		return r.Index
	case FieldName:
		return r.Name
	case FieldCategory:
		return r.Category
	case FieldSize:
		return r.Size
	case FieldDescription:
		return r.Description
	case FieldMainLink:
		return r.MainLink
	default:
		return r.Extra[column]
	}
}

// Clone returns a copy that shares no maps with r
func (r Record) Clone() Record {
	if r.Extra == nil {
		return r
	}
	extra := make(map[string]string, len(r.Extra))
	for k, v := range r.Extra {
		extra[k] = v
	}
	r.Extra = extra
	return r
}
