package store

// Record is one system entry of a system list.
// Name is the key within a Store; the other fields are free text.
type Record struct {
	FullName  string `json:"fullname" yaml:"fullname"`
	Name      string `json:"name" yaml:"name"`
	Path      string `json:"path" yaml:"path"`
	Extension string `json:"extension" yaml:"extension"`
	Command   string `json:"command" yaml:"command"`
	Platform  string `json:"platform" yaml:"platform"`
	Theme     string `json:"theme" yaml:"theme"`
}

// Child element names of a system element, in serialization order.
const (
	FieldFullName  = "fullname"
	FieldName      = "name"
	FieldPath      = "path"
	FieldExtension = "extension"
	FieldCommand   = "command"
	FieldPlatform  = "platform"
	FieldTheme     = "theme"
)

// FieldOrder is the fixed order of child elements inside a system element.
var FieldOrder = []string{
	FieldFullName,
	FieldName,
	FieldPath,
	FieldExtension,
	FieldCommand,
	FieldPlatform,
	FieldTheme,
}

// Equal reports whether r and other describe the same system.
// Only Name is compared; use == for a deep comparison.
func (r Record) Equal(other Record) bool {
	return r.Name == other.Name
}

// String returns the system name.
func (r Record) String() string {
	return r.Name
}

// Field returns the value of the named child element.
// Unknown names yield "".
func (r Record) Field(name string) string {
	switch name {
	case FieldFullName:
		return r.FullName
	case FieldName:
		return r.Name
	case FieldPath:
		return r.Path
	case FieldExtension:
		return r.Extension
	case FieldCommand:
		return r.Command
	case FieldPlatform:
		return r.Platform
	case FieldTheme:
		return r.Theme
	default:
		return ""
	}
}

// setField assigns the value of the named child element.
// Unknown names are ignored.
func (r *Record) setField(name, value string) {
	switch name {
	case FieldFullName:
		r.FullName = value
	case FieldName:
		r.Name = value
	case FieldPath:
		r.Path = value
	case FieldExtension:
		r.Extension = value
	case FieldCommand:
		r.Command = value
	case FieldPlatform:
		r.Platform = value
	case FieldTheme:
		r.Theme = value
	}
}
