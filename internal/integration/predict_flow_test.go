package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"jobpath/internal/app"
	"jobpath/internal/config"
	"jobpath/internal/dataset"
	"jobpath/internal/domain/activity"
	"jobpath/internal/domain/course"
	"jobpath/internal/domain/job"
)

type predictResponse struct {
	ID         []string  `json:"id"`
	Position   []string  `json:"position"`
	Similarity []float64 `json:"similiarity"`
}

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	tables := dataset.Tables{
		Courses: []course.Course{
			{ID: "c1", Name: "Analisis Data", Description: "belajar analisis data dengan python", LearningPath: "Data", Level: course.LevelBeginner, Technology: "python, sql"},
			{ID: "c2", Name: "Machine Learning", Description: "membangun model machine learning python", LearningPath: "Data", Level: course.LevelIntermediate, Technology: "python"},
			{ID: "c3", Name: "Pemrograman Web", Description: "membangun aplikasi web javascript", LearningPath: "Web", Level: course.LevelFundamental, Technology: "javascript, html"},
		},
		Jobs: []job.Job{
			{ID: "j1", Position: "Data Analyst", Description: "analisis data python sql", MinimumExperience: job.ExperienceFreshGraduate},
			{ID: "j2", Position: "Machine Learning Engineer", Description: "model machine learning python", MinimumExperience: job.ExperienceOneToThreeYears},
			{ID: "j3", Position: "Web Developer", Description: "aplikasi web javascript html", MinimumExperience: job.ExperienceFreshGraduate},
			{ID: "j4", Position: "Data Engineer", Description: "pipeline data python", MinimumExperience: job.ExperienceFourToFiveYears},
		},
		Ratings: []activity.Rating{
			{RespondentID: "u1", CourseID: "c1"},
			{RespondentID: "u1", CourseID: "c2"},
			{RespondentID: "u1", CourseID: "c3"},
		},
		Applications: []activity.JobApplication{
			{UserID: "u1", VacancyID: "j1"},
		},
	}

	cfg := config.Config{}
	cfg.App.AppName = "jobpath-test"
	cfg.App.CORSAllowOrigin = "http://localhost:3000"

	c := &app.Container{
		Config: cfg,
		Store:  dataset.NewStore(tables),
		Logger: log.New(io.Discard, "", 0),
	}
	return app.New(c)
}

func postPredict(t *testing.T, a *app.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/predict", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Fiber.Test(req)
	if err != nil {
		t.Fatalf("predict request: %v", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

func TestPredict_RecommendationsFlow(t *testing.T) {
	a := newTestApp(t)

	status, body := postPredict(t, a, `{"user_id":"u1"}`)
	if status != 200 {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var out predictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(out.ID) == 0 {
		t.Fatalf("expected recommendations, got none")
	}
	if len(out.ID) != len(out.Position) || len(out.ID) != len(out.Similarity) {
		t.Fatalf("parallel arrays out of sync: %d/%d/%d", len(out.ID), len(out.Position), len(out.Similarity))
	}
	if len(out.ID) > 10 {
		t.Fatalf("more than 10 recommendations: %d", len(out.ID))
	}
	for i := 1; i < len(out.Similarity); i++ {
		if out.Similarity[i] > out.Similarity[i-1] {
			t.Fatalf("scores not descending: %v", out.Similarity)
		}
	}
	for i, id := range out.ID {
		if id == "j1" {
			t.Fatalf("applied job j1 recommended at %d", i)
		}
		if out.Position[i] == "" {
			t.Fatalf("position missing for %s", id)
		}
	}
}

func TestPredict_UnknownUserGetsEmptyArrays(t *testing.T) {
	a := newTestApp(t)

	status, body := postPredict(t, a, `{"user_id":"stranger"}`)
	if status != 200 {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var out predictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.ID) != 0 || len(out.Position) != 0 || len(out.Similarity) != 0 {
		t.Fatalf("expected empty arrays, got %s", body)
	}
	if !bytes.Contains(body, []byte(`"similiarity"`)) {
		t.Fatalf("legacy similiarity key missing in %s", body)
	}
}

func TestPredict_MissingUserID(t *testing.T) {
	a := newTestApp(t)

	status, body := postPredict(t, a, `{}`)
	if status != 400 {
		t.Fatalf("expected 400, got %d: %s", status, body)
	}

	var out semanticResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status != 400 {
		t.Fatalf("unexpected envelope %s", body)
	}
}

func TestRecommendationsV1_Envelope(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/users/u1/recommendations", nil)
	resp, err := a.Fiber.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, b)
	}

	var out semanticResponse
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var items []struct {
		JobID    string  `json:"job_id"`
		Position string  `json:"position"`
		Score    float64 `json:"similarity_score"`
	}
	if err := json.Unmarshal(out.Data, &items); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected items, got %s", b)
	}
	for _, it := range items {
		if it.JobID == "" || it.Position == "" {
			t.Fatalf("incomplete item %+v", it)
		}
	}
}
