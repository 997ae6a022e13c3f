package db

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	assessmentstore "talentflow-backend/lib/assessment/store"
	candidatestore "talentflow-backend/lib/candidate/store"
	jobstore "talentflow-backend/lib/job/store"
	"talentflow-backend/lib/recordstore"
	"talentflow-backend/models"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	candidateapimodels "talentflow-backend/models/api/candidate"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

var seedJobs = []jobapimodels.JobData{
	{Title: "Senior Backend Engineer", Slug: "senior-backend-engineer", Description: "Own the services behind the hiring pipeline", Tags: []string{"go", "backend"}, Location: "Remote", Type: models.JobTypeFullTime},
	{Title: "Frontend Engineer", Slug: "frontend-engineer", Description: "Build the recruiting workspace UI", Tags: []string{"react", "frontend"}, Location: "Berlin", Type: models.JobTypeFullTime},
	{Title: "Data Analyst", Slug: "data-analyst", Description: "Pipeline and funnel analytics", Tags: []string{"sql", "analytics"}, Location: "Remote", Type: models.JobTypeContract},
	{Title: "Engineering Manager", Slug: "engineering-manager", Description: "Lead the platform team", Tags: []string{"management"}, Location: "Amsterdam", Type: models.JobTypeFullTime},
	{Title: "QA Engineer", Slug: "qa-engineer", Description: "Quality for the assessment builder", Tags: []string{"testing"}, Location: "Remote", Type: models.JobTypePartTime},
	{Title: "DevOps Engineer", Slug: "devops-engineer", Description: "Keep the simulator humming", Tags: []string{"infra", "ops"}, Location: "Remote", Type: models.JobTypeFullTime},
	{Title: "Product Designer", Slug: "product-designer", Description: "Design the Kanban board experience", Tags: []string{"design"}, Location: "London", Type: models.JobTypeFullTime},
	{Title: "Technical Writer", Slug: "technical-writer", Description: "Document the hiring workflows", Tags: []string{"docs"}, Location: "Remote", Type: models.JobTypeInternship},
}

var seedNames = []string{
	"Alice Novak", "Boris Eriksen", "Carla Jimenez", "Dmitri Petrov", "Elena Russo",
	"Farid Haddad", "Greta Lindqvist", "Henry Okafor", "Ivana Kovac", "Jonas Weber",
	"Katya Melnik", "Liam O'Connor", "Mina Tanaka", "Noah Berg", "Olga Sokolova",
	"Pavel Horak", "Quinn Murphy", "Rosa Almeida", "Stefan Bauer", "Tara Singh",
}

// Seed fills an empty store with sample data, the way a fresh install of the
// app starts with a populated board.
func Seed(store *recordstore.Store) error {
	existing, err := store.Table(recordstore.TableJobs).IterateAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("store already populated, skipping seed")
		return nil
	}

	jobs := jobstore.NewInstance(store)
	candidates := candidatestore.NewInstance(store)
	assessments := assessmentstore.NewInstance(store)

	jobIDs := []string{}
	for _, data := range seedJobs {
		rec, err := jobs.Create(data)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, rec.ID)
	}

	for idx, name := range seedNames {
		jobID := jobIDs[idx%len(jobIDs)]
		stage := models.Stages[idx%len(models.Stages)]
		rec, err := candidates.Create(candidateapimodels.CandidateData{
			Name:  name,
			Email: fmt.Sprintf("candidate%02d@example.com", idx+1),
			JobID: jobID,
		})
		if err != nil {
			return err
		}
		if stage != models.StageApplied {
			if _, err := candidates.Update(rec.ID, candidateapimodels.CandidatePatch{Stage: &stage}); err != nil {
				return err
			}
		}
	}

	maxLen := 200
	_, err = assessments.Upsert(jobIDs[0], assessmentapimodels.AssessmentData{
		Title:       "Backend screening",
		Description: "Short screen for the backend opening",
		IsPublished: true,
		Sections: []dbmodels.Section{
			{
				Title: "Basics",
				Questions: []dbmodels.Question{
					{
						Type:     models.QuestionSingleChoice,
						Title:    "Preferred deployment target",
						Required: true,
						Options: []dbmodels.Option{
							{Label: "Kubernetes", Value: "k8s"},
							{Label: "Bare VMs", Value: "vms"},
							{Label: "Serverless", Value: "faas"},
						},
					},
					{
						Type:      models.QuestionShortText,
						Title:     "Largest system you have operated",
						MaxLength: &maxLen,
					},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	log.WithField("jobs", len(jobIDs)).WithField("candidates", len(seedNames)).Info("seed data loaded")
	return nil
}
