package taskparser

// Entry is one timesheet row extracted from free text.
type Entry struct {
	Task  string `json:"task"`
	Hours int    `json:"hours"`
	Date  string `json:"date"` // YYYY-MM-DD

	// FractionalHours keeps the written token (e.g. "3.5") when Hours was
	// rounded from it. Validation reports it.
	FractionalHours string `json:"-"`
}

// match is a token located in a fragment.
type match struct {
	start, end int
	text       string
	fraction   string // hours token with a decimal part
}

// Option configures a Parser.
type Option func(*Parser)

// WithDefaultHours overrides the hours used when a fragment has no hours token.
// Non-positive values are ignored.
func WithDefaultHours(hours int) Option {
	return func(p *Parser) {
		if hours > 0 {
			p.defaultHours = hours
		}
	}
}

// WithoutNaturalLanguage disables the general date-language fallback.
func WithoutNaturalLanguage() Option {
	return func(p *Parser) {
		p.natural = nil
	}
}
