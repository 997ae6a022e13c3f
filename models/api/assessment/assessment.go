package assessmentapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// AssessmentData is the PUT payload; the job id comes from the route.
type AssessmentData struct {
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Sections         []dbmodels.Section `json:"sections"`
	IsPublished      bool               `json:"isPublished"`
	TimeLimitMinutes *int               `json:"timeLimitMinutes,omitempty"`
}

func (d AssessmentData) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("assessment title is required")
	}
	for _, section := range d.Sections {
		if strings.TrimSpace(section.Title) == "" {
			return errors.New("section title is required")
		}
		for _, question := range section.Questions {
			if err := validateQuestion(question); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateQuestion closes over the question union: every variant is checked
// against exactly the fields it may carry.
func validateQuestion(q dbmodels.Question) error {
	if strings.TrimSpace(q.Title) == "" {
		return errors.New("question title is required")
	}
	if err := q.Type.IsValid(); err != nil {
		return err
	}
	switch q.Type {
	case models.QuestionSingleChoice:
		if len(q.Options) < 2 {
			return errors.Errorf("question %q needs at least two options", q.Title)
		}
	case models.QuestionMultiChoice:
		if len(q.Options) < 2 {
			return errors.Errorf("question %q needs at least two options", q.Title)
		}
		if q.MaxSelections != nil && (*q.MaxSelections < 1 || *q.MaxSelections > len(q.Options)) {
			return errors.Errorf("question %q has an impossible maxSelections", q.Title)
		}
	case models.QuestionShortText, models.QuestionLongText:
		if q.MaxLength != nil && *q.MaxLength < 1 {
			return errors.Errorf("question %q has an invalid maxLength", q.Title)
		}
	case models.QuestionNumeric:
		if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
			return errors.Errorf("question %q has min above max", q.Title)
		}
	case models.QuestionFileUpload:
		if len(q.AcceptedTypes) == 0 {
			return errors.Errorf("question %q needs accepted file types", q.Title)
		}
		if q.MaxSizeMB != nil && *q.MaxSizeMB < 1 {
			return errors.Errorf("question %q has an invalid maxSize", q.Title)
		}
	}
	return nil
}

type SubmitRequest struct {
	CandidateID      string            `json:"candidateId"`
	Answers          []dbmodels.Answer `json:"answers"`
	TimeSpentSeconds int               `json:"timeSpent"`
}

func (r SubmitRequest) Validate() error {
	if r.CandidateID == "" {
		return errors.New("candidateId is required")
	}
	if len(r.Answers) == 0 {
		return errors.New("a submission needs at least one answer")
	}
	return nil
}
