package guide

import (
	"fmt"
	"strings"

	"dmguide/internal/model"
)

// GenerateReport renders the whole guide as Markdown, section by section in
// navigation order. Exercise solutions are included.
func GenerateReport() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n_%s_\n\n", model.GuideTitle, model.GuideSubtitle)

	writeOverview(&sb)

	sb.WriteString("## Algorithms\n\n")
	for _, id := range model.AlgorithmIDs() {
		writeAlgorithm(&sb, id, "###")
	}

	sb.WriteString("## Flashcards\n\n")
	for i, c := range model.Flashcards() {
		fmt.Fprintf(&sb, "%d. **%s**  \n   %s\n", i+1, c.Question, c.Answer)
	}
	sb.WriteString("\n")

	sb.WriteString("## Formulas\n\n")
	for _, f := range model.Formulas() {
		fmt.Fprintf(&sb, "**%s**\n\n    %s\n\nUse: %s\n\n", f.Name, f.Formula, f.Use)
	}

	sb.WriteString("## Exam Tips\n\n")
	for i, tip := range model.ExamTips() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, tip)
	}
	sb.WriteString("\n### Common Exam Question Types\n\n")
	writeList(&sb, model.ExamQuestionTypes())

	return sb.String()
}

// AlgorithmReport renders the detail page of one algorithm as Markdown.
func AlgorithmReport(id model.AlgorithmID) (string, error) {
	if !id.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownAlgorithm, id)
	}
	var sb strings.Builder
	writeAlgorithm(&sb, id, "#")
	return sb.String(), nil
}

func writeOverview(sb *strings.Builder) {
	o := model.Overview()
	sb.WriteString("## Overview\n\n")
	fmt.Fprintf(sb, "### %s\n\n%s\n\n", o.Heading, o.Summary)
	sb.WriteString("**Itemset Mining**\n\n")
	writeList(sb, o.ItemsetMining)
	sb.WriteString("**Sequential Mining**\n\n")
	writeList(sb, o.SequentialMining)
	sb.WriteString("**Key Concepts**\n\n")
	for _, t := range o.KeyConcepts {
		fmt.Fprintf(sb, "- **%s:** %s\n", t.Term, t.Definition)
	}
	sb.WriteString("\n")
}

func writeAlgorithm(sb *strings.Builder, id model.AlgorithmID, heading string) {
	a, _ := model.Algorithm(id)
	sub := heading + "#"

	fmt.Fprintf(sb, "%s %s\n\n", heading, a.Name)
	fmt.Fprintf(sb, "_%s_\n\n**Purpose:** %s\n\n", a.Type, a.Purpose)

	section := func(title string, items []string, numbered bool) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(sb, "%s %s\n\n", sub, title)
		if numbered {
			for i, it := range items {
				fmt.Fprintf(sb, "%d. %s\n", i+1, it)
			}
			sb.WriteString("\n")
			return
		}
		writeList(sb, items)
	}

	section("Key Points", a.KeyPoints, false)
	section("Algorithm Steps", a.Steps, true)
	section("Properties", a.Properties, true)
	section("Optimizations", a.Optimization, false)

	if a.Advantage != "" {
		fmt.Fprintf(sb, "**Advantage:** %s\n\n", a.Advantage)
	}
	for _, f := range a.Facts() {
		fmt.Fprintf(sb, "**%s:** %s\n\n", f.Label, f.Text)
	}
	if a.Example != "" {
		fmt.Fprintf(sb, "**Example:** %s\n\n", a.Example)
	}

	if len(a.Exercises) > 0 {
		fmt.Fprintf(sb, "%s Practice Exercises\n\n", sub)
		for i, ex := range a.Exercises {
			fmt.Fprintf(sb, "**Exercise %d: %s**\n\nProblem: %s\n\n", i+1, ex.Title, ex.Description)
			sb.WriteString("```\n")
			sb.WriteString(ex.Solution)
			sb.WriteString("\n```\n\n")
		}
	}

	section("Common Mistakes to Avoid", a.CommonMistakes, false)
	if len(a.StudyChecklist) > 0 {
		fmt.Fprintf(sb, "%s Study Checklist\n\n", sub)
		for _, item := range a.StudyChecklist {
			fmt.Fprintf(sb, "- [ ] %s\n", item)
		}
		sb.WriteString("\n")
	}
}

func writeList(sb *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(sb, "- %s\n", it)
	}
	sb.WriteString("\n")
}
