package models

const (
	// End delimiter of the reasoning segment some models emit before the
	// answer. Extraction keys on the end tag alone; a dangling start tag
	// simply passes through.
	ThinkEndTag = "</think>"

	// Separator between retrieved chunks in the interactive prompt.
	ContextSeparator = "\n\n"

	// Separator between field name and answer in batch model output.
	FieldSeparator = ":"
)

const (
	SystemPromptInteractive = "You are an AI assistant helping with resume data extraction. " +
		"Answer briefly, directly, and without any explanation or commentary. " +
		"If the answer is e.g. a number or a date or a bunch of certificates, return only that. " +
		"Do NOT restate the question. Do NOT explain the answer. Return just the answer."

	SystemPromptBatch = SystemPromptInteractive +
		" Answer every question on its own line in the form 'Field: answer'."
)

// DefaultFieldQueries is the extraction question set applied to every
// resume in batch mode when the config file does not override it.
var DefaultFieldQueries = []FieldQuery{
	{Field: "Name", Question: "What is the candidate's name?"},
	{Field: "Qualification", Question: "What is the candidate's latest qualification?"},
	{Field: "Skills", Question: "What are the candidate's technical skills?"},
	{Field: "Experience", Question: "What is the experience in years?"},
	{Field: "Companies", Question: "What are the companies the candidate worked at?"},
	{Field: "Location", Question: "What is the location of the candidate?"},
	{Field: "Certificates", Question: "List any certificates, courses, bootcamps, or training programs this person has completed."},
	{Field: "Notice Period", Question: "What is the candidate's notice period?"},
}
