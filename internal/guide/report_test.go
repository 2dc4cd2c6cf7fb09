package guide

import (
	"errors"
	"strings"
	"testing"

	"dmguide/internal/model"
)

func TestGenerateReportCoversAllContent(t *testing.T) {
	report := GenerateReport()

	for _, id := range model.AlgorithmIDs() {
		a, _ := model.Algorithm(id)
		if !strings.Contains(report, "### "+a.Name) {
			t.Errorf("Report missing algorithm %q", a.Name)
		}
	}
	for _, c := range model.Flashcards() {
		if !strings.Contains(report, c.Question) {
			t.Errorf("Report missing flashcard %q", c.Question)
		}
	}
	for _, f := range model.Formulas() {
		if !strings.Contains(report, f.Formula) {
			t.Errorf("Report missing formula %q", f.Name)
		}
	}
	for _, tip := range model.ExamTips() {
		if !strings.Contains(report, tip) {
			t.Errorf("Report missing tip %q", tip)
		}
	}
	if !strings.Contains(report, "Common Exam Question Types") {
		t.Error("Report missing question types")
	}
}

func TestAlgorithmReportOnlyShowsPresentFields(t *testing.T) {
	md, err := AlgorithmReport(model.GenMax)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(md, "# GenMax\n") {
		t.Errorf("Expected GenMax heading, got %q", md[:20])
	}
	if strings.Contains(md, "Algorithm Steps") {
		t.Error("GenMax has no steps, the section should be omitted")
	}
	if strings.Contains(md, "Practice Exercises") {
		t.Error("GenMax has no exercises, the section should be omitted")
	}
	if !strings.Contains(md, "**Relationship:**") {
		t.Error("Expected the relationship fact")
	}

	md, _ = AlgorithmReport(model.Charm)
	if !strings.Contains(md, "## Properties") {
		t.Error("Expected CHARM properties")
	}
	if !strings.Contains(md, "**Closure Operator:**") {
		t.Error("Expected CHARM closure operator")
	}

	if _, err := AlgorithmReport("kmeans"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
}
