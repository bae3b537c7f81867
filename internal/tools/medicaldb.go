package tools

import (
	"context"
	"strings"
)

const (
	medicalDBHit = "WHO/CDC record: Vaccines are rigorously tested for safety before approval " +
		"and are continuously monitored afterwards. Extensive studies show no link between " +
		"vaccines and autism."
	medicalDBMiss = "No record found in the medical database for this query."
)

// MedicalDBTool is a stub lookup of verified medical facts. It answers a
// single trigger phrase and reports a miss for everything else.
type MedicalDBTool struct{}

func (MedicalDBTool) Name() string { return "medical_db" }

func (MedicalDBTool) Description() string {
	return "Useful for looking up verified medical facts from WHO, CDC, and PubMed. Input: a medical topic."
}

func (MedicalDBTool) Execute(ctx context.Context, input string) (string, error) {
	if strings.Contains(strings.ToLower(input), "vaccine") {
		return medicalDBHit, nil
	}
	return medicalDBMiss, nil
}
