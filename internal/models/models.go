package models

// Verdict classifies a health claim.
type Verdict string

const (
	VerdictTrue       Verdict = "True"
	VerdictFalse      Verdict = "False"
	VerdictMisleading Verdict = "Misleading"
	VerdictUnverified Verdict = "Unverified"
	VerdictError      Verdict = "Error"
)

// Valid reports whether v is one of the closed verdict set.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictMisleading, VerdictUnverified, VerdictError:
		return true
	}
	return false
}

// AnalysisRequest is the body of POST /analyze. At least one of the two
// fields must be set.
type AnalysisRequest struct {
	Text        string `json:"text,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

// AnalysisResult is the normalized outcome of analyzing one claim.
type AnalysisResult struct {
	Verdict               Verdict  `json:"verdict"`
	Confidence            float64  `json:"confidence"`
	Explanation           string   `json:"explanation"`
	Sources               []string `json:"sources"`
	CorrectiveInformation *string  `json:"corrective_information"`
}

// Normalize enforces the schema invariants in place: the verdict must belong
// to the closed set (unknown values become Unverified), confidence is clamped
// to [0, 1], a missing explanation gets a placeholder and sources serializes
// as an empty list rather than null.
func (r *AnalysisResult) Normalize() {
	if !r.Verdict.Valid() {
		r.Verdict = VerdictUnverified
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
	if r.Explanation == "" {
		r.Explanation = "No explanation provided."
	}
	if r.Sources == nil {
		r.Sources = []string{}
	}
}

// Corrective is a convenience for building the optional corrective field.
func Corrective(s string) *string {
	return &s
}
