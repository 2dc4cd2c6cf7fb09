package guide

import (
	"dmguide/internal/model"
)

// Screen is what a display surface should show for a given ViewState. It is
// computed by Project and contains no styling.
type Screen struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Section  model.Section `json:"section"`
	DarkMode bool          `json:"darkMode"`

	// Exactly one of the section bodies below is set, matching Section.
	Overview   *model.OverviewPanel `json:"overview,omitempty"`
	Algorithms []AlgorithmPanel     `json:"algorithms,omitempty"`
	Card       *CardView            `json:"card,omitempty"`
	Formulas   []model.Formula      `json:"formulas,omitempty"`
	Tips       *TipsView            `json:"tips,omitempty"`

	// Detail is layered over the section body when set.
	Detail *DetailView `json:"detail,omitempty"`
}

// AlgorithmPanel is one accordion entry in the algorithms section.
type AlgorithmPanel struct {
	ID       model.AlgorithmID    `json:"id"`
	Entry    model.AlgorithmEntry `json:"entry"`
	Expanded bool                 `json:"expanded"`
}

// CardView is the flashcard section body.
type CardView struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Flipped  bool     `json:"flipped"`
	Label    string   `json:"label"`
	Text     string   `json:"text"`
	Hint     string   `json:"hint"`
	Progress float64  `json:"progress"` // (Index+1)/Total
	Tips     []string `json:"tips"`
}

// TipsView is the exam tips section body.
type TipsView struct {
	Tips          []string `json:"tips"`
	QuestionTypes []string `json:"questionTypes"`
}

// DetailView is the full-screen algorithm overlay.
type DetailView struct {
	ID        model.AlgorithmID    `json:"id"`
	Entry     model.AlgorithmEntry `json:"entry"`
	Exercises []ExerciseView       `json:"exercises,omitempty"`
	Checklist []ChecklistItem      `json:"checklist,omitempty"`
}

// ExerciseView is an exercise whose Solution is empty until revealed.
type ExerciseView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Revealed    bool   `json:"revealed"`
	Solution    string `json:"solution,omitempty"`
}

type ChecklistItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Project computes the Screen for s. It is deterministic and reads nothing
// but s and the content tables.
func Project(s ViewState) Screen {
	scr := Screen{
		Title:    model.GuideTitle,
		Subtitle: model.GuideSubtitle,
		Section:  s.Section,
		DarkMode: s.DarkMode,
	}

	switch s.Section {
	case model.SectionOverview:
		o := model.Overview()
		scr.Overview = &o
	case model.SectionAlgorithms:
		for _, id := range model.AlgorithmIDs() {
			entry, _ := model.Algorithm(id)
			scr.Algorithms = append(scr.Algorithms, AlgorithmPanel{
				ID:       id,
				Entry:    entry,
				Expanded: id == s.ExpandedAlgo,
			})
		}
	case model.SectionFlashcards:
		scr.Card = projectCard(s)
	case model.SectionFormulas:
		scr.Formulas = model.Formulas()
	case model.SectionTips:
		scr.Tips = &TipsView{
			Tips:          model.ExamTips(),
			QuestionTypes: model.ExamQuestionTypes(),
		}
	}

	if s.DetailOpen() {
		scr.Detail = projectDetail(s)
	}
	return scr
}

func projectCard(s ViewState) *CardView {
	total := model.FlashcardCount()
	cv := &CardView{
		Index:    s.CardIndex,
		Total:    total,
		Flipped:  s.CardFlipped,
		Text:     s.CardText(),
		Progress: float64(s.CardIndex+1) / float64(total),
		Tips:     model.StudyTips(),
	}
	if s.CardFlipped {
		cv.Label = "✓ ANSWER"
		cv.Hint = "see question"
	} else {
		cv.Label = "❓ QUESTION"
		cv.Hint = "reveal answer"
	}
	return cv
}

func projectDetail(s ViewState) *DetailView {
	entry, ok := model.Algorithm(s.DetailedAlgo)
	if !ok {
		return nil
	}
	dv := &DetailView{ID: s.DetailedAlgo, Entry: entry}
	for i, ex := range entry.Exercises {
		ev := ExerciseView{
			Title:       ex.Title,
			Description: ex.Description,
			Revealed:    s.IsRevealed(i),
		}
		if ev.Revealed {
			ev.Solution = ex.Solution
		}
		dv.Exercises = append(dv.Exercises, ev)
	}
	for i, item := range entry.StudyChecklist {
		dv.Checklist = append(dv.Checklist, ChecklistItem{Text: item, Checked: s.IsChecked(i)})
	}
	return dv
}
