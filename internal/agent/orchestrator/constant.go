package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixProcessQuery  = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixFormatEntries = "internal.agent.orchestrator.formatEntries"
)

// Time context template
const (
	TimeContextTemplate = `

[SYSTEM CONTEXT - current time]
- Today: %s (%s)
- Yesterday: %s
- This week: %s to %s

RULES:
1. Resolve relative dates ("yesterday", "last friday") against the dates above.
2. Never ask the user for a specific date; default to today.
3. Dates are ALWAYS formatted YYYY-MM-DD.`
)

// System prompt
const (
	SystemPromptAgent = `You are TimesheetManager, an assistant that turns work descriptions into timesheet entries.

Run this pipeline on every request:
TaskExtractor -> CalendarAgent -> HoursAgent -> ValidatorAgent -> ReviewAgent -> FormatAgent

1. TaskExtractor: extract every task, its hours and its date from the user input (parse_tasks helps).
2. CalendarAgent: convert relative dates to YYYY-MM-DD using date_tool.
3. HoursAgent: fill missing hours with 8 and normalize hour values to integers.
4. ValidatorAgent: check every entry with validation_tool.
5. ReviewAgent: polish task descriptions to be professional and readable.
6. FormatAgent: when the user describes work, answer ONLY with a JSON array of objects
   {"date": "YYYY-MM-DD", "task": string, "hours": integer}. No markdown, no prose.

When the user asks a general question (for example the time in a city, use current_time),
answer briefly in Markdown instead.`
)

// SystemPromptFormat drives the structured pass that restates a finished
// timesheet turn as the entry array.
const (
	SystemPromptFormat = `You are the FormatAgent of TimesheetManager.
Return the timesheet entries of the conversation below as a JSON array of
{"date": "YYYY-MM-DD", "task": string, "hours": integer}.
Keep the dates, tasks and hours already worked out. Do not invent entries.`

	FormatInstruction = "Return the entries as JSON."
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent LLM error at step %d: %w"
	ErrMsgMaxStepsExceeded = "The assistant took too many steps on this request. Please split it into smaller parts."
)

// Log messages
const (
	LogMsgAgentStep          = "%s: step %d/%d"
	LogMsgAgentFinished      = "%s: finished at step %d"
	LogMsgAgentCallingTool   = "%s: calling tool %s with args %+v"
	LogMsgToolNotFound       = "%s: tool %s not found"
	LogMsgToolExecutionError = "%s: tool %s failed: %v"
	LogMsgAgentMaxSteps      = "%s: exceeded max steps (%d)"
	LogMsgFormatFailed       = "%s: structured pass failed, keeping draft: %v"
)

// Configuration defaults
const (
	DefaultMaxSteps     = 5
	DefaultMaxHistory   = 20 // last 10 turns
	DefaultSessionTTL   = 30 * time.Minute
	DefaultSessionLimit = 1000
	DefaultTemperature  = 0.2
)

// DefaultFormatTools are the tools whose use means the turn produced entries.
var DefaultFormatTools = []string{"parse_tasks", "date_tool", "validation_tool"}
