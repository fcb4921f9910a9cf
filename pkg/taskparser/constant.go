package taskparser

import "regexp"

const (
	// DefaultHours is used when a fragment carries no hours token.
	DefaultHours = 8

	// DefaultLabel replaces a label that is empty after cleaning.
	DefaultLabel = "Task"
)

var (
	splitRe  = regexp.MustCompile(`(?i)\s*,\s*|\s+and\s+`)
	hoursRe  = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:hours|hour|hrs|hr|h)\b`)
	dateRe   = regexp.MustCompile(`(?i)\b(?:(?:last|next|previous)\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b|\b(?:today|yesterday|tomorrow)\b|\b\d{4}-\d{2}-\d{2}\b`)
	fillerRe = regexp.MustCompile(`(?i)\b(?:on|for|at|the|a)\b`)

	// matched-text classifiers for the general date-language fallback
	futureRe      = regexp.MustCompile(`(?i)\b(?:next|within|after|later|from now|tomorrow|coming)\b|\bin\s+(?:\d+|a|an|one|two|three|few)\b`)
	weekdayWordRe = regexp.MustCompile(`(?i)\b(?:mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)(?:day|nesday|rsday|urday)?\b`)
	monthWordRe   = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
)
