package gemini

import "time"

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

// MIMETypeJSON asks Gemini for a JSON reply instead of free text.
const MIMETypeJSON = "application/json"

// Schema types, as the Gemini OpenAPI subset spells them.
const (
	TypeArray   = "ARRAY"
	TypeObject  = "OBJECT"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
	TypeNumber  = "NUMBER"
	TypeBoolean = "BOOLEAN"
)

const (
	roleModel    = "model"
	roleUser     = "user"
	roleFunction = "function"
)
