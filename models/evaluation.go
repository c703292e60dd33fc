package models

// Scores breaks an evaluation down by criterion, each on a 1-5 scale.
type Scores struct {
	Relevance        int `json:"relevance"`
	Clarity          int `json:"clarity"`
	EducationalValue int `json:"educational_value"`
	Feasibility      int `json:"feasibility"`
}

// Evaluation is the structured pedagogical assessment of a student prompt.
// It is embedded in projects and version snapshots, stored serialized as JSON.
// IsAppropriate is derived: OverallScore >= 3.
type Evaluation struct {
	OverallScore  int      `json:"overall_score"`
	Scores        Scores   `json:"scores"`
	Feedback      string   `json:"feedback"`
	Suggestions   []string `json:"suggestions"`
	IsAppropriate bool     `json:"is_appropriate"`
}
