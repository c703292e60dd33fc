package models

// ProjectUpdate lists every updatable project field as an optional value; a
// nil field means "leave unchanged". Unknown JSON keys in an update request
// are dropped by the decoder, so only these fields can ever be touched.
type ProjectUpdate struct {
	Title           *string     `json:"title"`
	Prompt          *string     `json:"prompt"`
	Evaluation      *Evaluation `json:"evaluation"`
	Status          *string     `json:"status"`
	HTMLContent     *string     `json:"html_content"`
	RejectionReason *string     `json:"rejection_reason"`
}

// Apply merges the provided fields onto p, leaving nil fields untouched.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Prompt != nil {
		p.Prompt = *u.Prompt
	}
	if u.Evaluation != nil {
		p.Evaluation = u.Evaluation
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.HTMLContent != nil {
		p.HTMLContent = u.HTMLContent
	}
	if u.RejectionReason != nil {
		p.RejectionReason = u.RejectionReason
	}
}

// TouchesPromptOrEvaluation reports whether the update changes the fields
// that require a version snapshot.
func (u ProjectUpdate) TouchesPromptOrEvaluation() bool {
	return u.Prompt != nil || u.Evaluation != nil
}
