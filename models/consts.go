package models

import "github.com/pkg/errors"

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"

	// JobStatusAll is only valid as a list filter value.
	JobStatusAll JobStatus = "all"
)

func (s JobStatus) IsValid() error {
	switch s {
	case JobStatusActive, JobStatusArchived:
		return nil
	}
	return errors.Errorf("unknown job status: %v", s)
}

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) IsValid() error {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return nil
	}
	return errors.Errorf("unknown job type: %v", t)
}

type Stage string

const (
	StageApplied  Stage = "applied"
	StageScreen   Stage = "screen"
	StageTech     Stage = "tech"
	StageOffer    Stage = "offer"
	StageHired    Stage = "hired"
	StageRejected Stage = "rejected"
)

var Stages = []Stage{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}

func (s Stage) IsValid() error {
	for _, known := range Stages {
		if s == known {
			return nil
		}
	}
	return errors.Errorf("unknown stage: %v", s)
}

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

func (t QuestionType) IsValid() error {
	switch t {
	case QuestionSingleChoice, QuestionMultiChoice, QuestionShortText,
		QuestionLongText, QuestionNumeric, QuestionFileUpload:
		return nil
	}
	return errors.Errorf("unknown question type: %v", t)
}

// TimelineType classifies candidate timeline events.
type TimelineType string

const (
	TimelineStageChange TimelineType = "stage_change" // candidate moved to another stage
	TimelineNote        TimelineType = "note"         // note attached to the candidate
	TimelineAdded       TimelineType = "added"        // candidate created
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)
