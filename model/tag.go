package model

// TaggedWord is one word of the model-based pipeline with its B-/I-/O tag
type TaggedWord struct {
	Word  string  `json:"word"`
	Tag   string  `json:"tag"`
	Score float64 `json:"score,omitempty"`
}

// DateChange records a date span rewritten by the date formatter.
// Start and End are word indices into the tagged input, End exclusive.
type DateChange struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// TagResult is the output of the model-based pipeline for one text
type TagResult struct {
	Tagged     []TaggedWord `json:"tagged"`
	Normalized []TaggedWord `json:"normalized"`
	Changes    []DateChange `json:"changes"`
}
