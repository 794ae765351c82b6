package models

// Chunk is a bounded fragment of a resume, tagged with the candidate it
// belongs to and its start offset in the extracted document text.
type Chunk struct {
	Text        string
	Candidate   string
	StartOffset int
}

// FieldQuery pairs a spreadsheet column name with the question used to
// extract its value. Order matters: the batch prompt enumerates the
// fields in configuration order.
type FieldQuery struct {
	Field    string `yaml:"field"`
	Question string `yaml:"question"`
}

// QueryResponse is the result of one interactive question.
type QueryResponse struct {
	Candidate  string
	Confidence int
	Context    string
	Answer     string
}
