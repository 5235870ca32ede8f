package logging

// Standardized field names for structured logging.
const (
	FieldPath     = "path"
	FieldDomain   = "domain"
	FieldCategory = "category"
	FieldUser     = "user"
	FieldConfig   = "config_file"
	FieldCookies  = "cookie_file"
	FieldError    = "error"
	FieldCount    = "count"
)
