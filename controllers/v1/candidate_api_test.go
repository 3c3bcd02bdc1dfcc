package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"jobboard-backend/config"
	candidatehandler "jobboard-backend/lib/candidate"
	candidatestore "jobboard-backend/lib/candidate/store"
	xlsexport "jobboard-backend/lib/export/xls"
	jobhandler "jobboard-backend/lib/job"
	jobstore "jobboard-backend/lib/job/store"
	authutils "jobboard-backend/lib/utils/auth-utils"
	"jobboard-backend/middleware"
	"jobboard-backend/models"
	candidateapimodels "jobboard-backend/models/api/candidate"
	dbmodels "jobboard-backend/models/db"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type response struct {
	Status  string          `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newTestServer(t *testing.T) *testServer {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600

	dir := t.TempDir()
	jobs := jobstore.NewFileInstance(filepath.Join(dir, "jobs.json"))
	jobhandler.NewHandler(jobs)
	xlsexport.NewHandler()
	candidatehandler.NewHandler(candidatestore.NewFileInstance(filepath.Join(dir, "applications.json")), jobs, time.Second)

	app := fiber.New()
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	InitJobApiRouters(apiV1, nil, 0, 0)
	space := fiber.New()
	apiV1.Mount("/space", space)
	space.Use(middleware.AuthorizationRequired())
	space.Use(middleware.RecruiterRequired())
	InitSpaceJobApiRouters(space)
	InitCandidateApiRouters(space)

	token, err := authutils.GetToken("u1", "Recruiter", models.UserRoleRecruiter)
	require.Nil(t, err)
	return &testServer{t: t, app: app, token: token}
}

func (s *testServer) do(method, path string, body interface{}) (int, response) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.Nil(s.t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	resp, err := s.app.Test(req)
	require.Nil(s.t, err)
	var result response
	require.Nil(s.t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func (s *testServer) createJob() dbmodels.Job {
	code, resp := s.do(fiber.MethodPost, "/api/v1/space/jobs", map[string]interface{}{
		"jobName":         "Go developer",
		"jobType":         "Full-time",
		"jobDescription":  "Backend services",
		"candidateNumber": 2,
		"linkedinReq":     "optional",
	})
	require.Equal(s.t, http.StatusOK, code)
	var job dbmodels.Job
	require.Nil(s.t, json.Unmarshal(resp.Data, &job))
	return job
}

func (s *testServer) apply(jobID, name string) dbmodels.Candidate {
	code, resp := s.do(fiber.MethodPost, "/api/v1/jobs/"+jobID+"/apply", candidateapimodels.ApplyData{
		FullName:     name,
		Email:        "applicant@example.com",
		PhoneNumber:  "+6281200000000",
		Gender:       "female",
		Domicile:     "Jakarta",
		DateOfBirth:  "1995-04-12",
		PhotoProfile: "http://localhost/photo.jpg",
	})
	require.Equal(s.t, http.StatusOK, code, resp.Error)
	var rec dbmodels.Candidate
	require.Nil(s.t, json.Unmarshal(resp.Data, &rec))
	return rec
}

func (s *testServer) list(jobID string) candidateapimodels.CandidateList {
	code, resp := s.do(fiber.MethodGet, "/api/v1/space/jobs/"+jobID+"/candidates", nil)
	require.Equal(s.t, http.StatusOK, code)
	var list candidateapimodels.CandidateList
	require.Nil(s.t, json.Unmarshal(resp.Data, &list))
	return list
}

func TestCandidateApi(t *testing.T) {
	s := newTestServer(t)
	job := s.createJob()
	a := s.apply(job.ID, "Ann")
	b := s.apply(job.ID, "Bob")
	c := s.apply(job.ID, "Cid")
	require.Equal(t, []int{1, 2, 3}, []int{a.Order, b.Order, c.Order})

	t.Run(`list check`, func(t *testing.T) {
		list := s.list(job.ID)
		require.Equal(t, "Go developer", list.JobName)
		require.Len(t, list.Candidates, 3)
		require.Equal(t, a.ID, list.Candidates[0].ID)
		require.Equal(t, models.CandidateStatusPending, list.Candidates[0].Status)

		code, resp := s.do(fiber.MethodGet, "/api/v1/space/jobs/unknown/candidates", nil)
		require.Equal(t, http.StatusNotFound, code)
		require.False(t, resp.Success)
		require.Equal(t, "Job not found", resp.Error)
	})

	t.Run(`reorder check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodPut, "/api/v1/space/jobs/"+job.ID+"/candidates/order", candidateapimodels.ReorderRequest{
			NewOrder: []candidateapimodels.OrderItem{{ID: c.ID, Order: 1}, {ID: a.ID, Order: 2}, {ID: b.ID, Order: 3}},
		})
		require.Equal(t, http.StatusOK, code)
		require.True(t, resp.Success)
		require.Equal(t, "Order updated successfully", resp.Message)
		list := s.list(job.ID)
		require.Equal(t, []string{c.ID, a.ID, b.ID}, []string{list.Candidates[0].ID, list.Candidates[1].ID, list.Candidates[2].ID})

		code, resp = s.do(fiber.MethodPut, "/api/v1/space/jobs/"+job.ID+"/candidates/order", map[string]interface{}{})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "newOrder array is required", resp.Error)
	})

	t.Run(`status check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodPut, "/api/v1/space/jobs/"+job.ID+"/candidates/status", candidateapimodels.StatusRequest{
			CandidateIDs: []string{a.ID, "unknown"},
			Status:       models.CandidateStatusApproved,
		})
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Status updated to approved for 1 candidate(s)", resp.Message)
		var result candidateapimodels.StatusResult
		require.Nil(t, json.Unmarshal(resp.Data, &result))
		require.Equal(t, []string{"unknown"}, result.SkippedIDs)

		code, resp = s.do(fiber.MethodPut, "/api/v1/space/jobs/"+job.ID+"/candidates/status", candidateapimodels.StatusRequest{
			CandidateIDs: []string{a.ID},
			Status:       "hired",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "Invalid status. Must be 'approved', 'declined', or 'pending'", resp.Error)
	})

	t.Run(`get check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodGet, "/api/v1/space/jobs/"+job.ID+"/candidates/"+a.ID, nil)
		require.Equal(t, http.StatusOK, code)
		var rec dbmodels.Candidate
		require.Nil(t, json.Unmarshal(resp.Data, &rec))
		require.Equal(t, models.CandidateStatusApproved, rec.Status)

		code, _ = s.do(fiber.MethodGet, "/api/v1/space/jobs/"+job.ID+"/candidates/unknown", nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run(`delete check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodDelete, "/api/v1/space/jobs/"+job.ID+"/candidates", candidateapimodels.DeleteRequest{
			CandidateIDs: []string{a.ID},
		})
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "1 candidate(s) deleted successfully", resp.Message)
		list := s.list(job.ID)
		require.Len(t, list.Candidates, 2)
		require.Equal(t, c.ID, list.Candidates[0].ID)
		require.Equal(t, 1, list.Candidates[0].Order)
		require.Equal(t, b.ID, list.Candidates[1].ID)
		require.Equal(t, 2, list.Candidates[1].Order)
	})
}

func TestManageCandidatesApi(t *testing.T) {
	s := newTestServer(t)
	job := s.createJob()
	a := s.apply(job.ID, "Ann")
	b := s.apply(job.ID, "Bob")

	t.Run(`invalid action check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodPatch, "/api/v1/space/manage-candidates", map[string]interface{}{
			"action": "archive",
			"jobId":  job.ID,
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "Invalid action. Must be 'updateOrder', 'updateStatus', or 'delete'", resp.Error)

		code, resp = s.do(fiber.MethodPatch, "/api/v1/space/manage-candidates", map[string]interface{}{
			"action": "delete",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "Action and jobId are required", resp.Error)
	})

	t.Run(`actions check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodPatch, "/api/v1/space/manage-candidates", candidateapimodels.ManageRequest{
			Action:   models.ManageActionUpdateOrder,
			JobID:    job.ID,
			NewOrder: []candidateapimodels.OrderItem{{ID: b.ID, Order: 1}, {ID: a.ID, Order: 2}},
		})
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Order updated successfully", resp.Message)

		code, resp = s.do(fiber.MethodPatch, "/api/v1/space/manage-candidates", candidateapimodels.ManageRequest{
			Action:       models.ManageActionUpdateStatus,
			JobID:        job.ID,
			CandidateIDs: []string{a.ID, b.ID},
			Status:       models.CandidateStatusDeclined,
		})
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Status updated to declined for 2 candidate(s)", resp.Message)

		code, resp = s.do(fiber.MethodPatch, "/api/v1/space/manage-candidates", candidateapimodels.ManageRequest{
			Action:       models.ManageActionDelete,
			JobID:        job.ID,
			CandidateIDs: []string{b.ID},
		})
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "1 candidate(s) deleted successfully", resp.Message)

		list := s.list(job.ID)
		require.Len(t, list.Candidates, 1)
		require.Equal(t, a.ID, list.Candidates[0].ID)
		require.Equal(t, 1, list.Candidates[0].Order)
		require.Equal(t, models.CandidateStatusDeclined, list.Candidates[0].Status)
	})
}

func TestJobApi(t *testing.T) {
	s := newTestServer(t)
	job := s.createJob()

	t.Run(`public routes check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodGet, "/api/v1/jobs?status=active", nil)
		require.Equal(t, http.StatusOK, code)
		var list []dbmodels.Job
		require.Nil(t, json.Unmarshal(resp.Data, &list))
		require.Len(t, list, 1)

		code, resp = s.do(fiber.MethodGet, "/api/v1/jobs/"+job.ID+"/form", nil)
		require.Equal(t, http.StatusOK, code)
		require.Contains(t, string(resp.Data), `"linkedinReq":"optional"`)
		require.Contains(t, string(resp.Data), `"emailReq":"mandatory"`)
	})

	t.Run(`apply validation check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", candidateapimodels.ApplyData{FullName: "Ann"})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "photoProfile is required", resp.Error)

		code, _ = s.do(fiber.MethodPost, "/api/v1/jobs/unknown/apply", candidateapimodels.ApplyData{})
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run(`create validation check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodPost, "/api/v1/space/jobs", map[string]interface{}{"jobType": "Full-time"})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "jobName is required", resp.Error)
	})

	t.Run(`update and delete check`, func(t *testing.T) {
		code, resp := s.do(fiber.MethodPatch, "/api/v1/space/jobs/"+job.ID, map[string]interface{}{"status": "inactive"})
		require.Equal(t, http.StatusOK, code)
		require.Contains(t, string(resp.Data), `"status":"inactive"`)

		code, _ = s.do(fiber.MethodDelete, "/api/v1/space/jobs/"+job.ID, nil)
		require.Equal(t, http.StatusOK, code)
		code, _ = s.do(fiber.MethodGet, "/api/v1/jobs/"+job.ID, nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run(`recruiter only check`, func(t *testing.T) {
		token, err := authutils.GetToken("u2", "Applicant", models.UserRoleApplicant)
		require.Nil(t, err)
		applicant := &testServer{t: t, app: s.app, token: token}
		code, _ := applicant.do(fiber.MethodPost, "/api/v1/space/jobs", map[string]interface{}{})
		require.Equal(t, http.StatusForbidden, code)
	})
}

func TestExportApi(t *testing.T) {
	s := newTestServer(t)
	job := s.createJob()
	s.apply(job.ID, "Ann")

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/space/jobs/"+job.ID+"/candidates/export?format=pdf", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	resp, err := s.app.Test(req)
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "go_developer.pdf")

	code, body := s.do(fiber.MethodGet, "/api/v1/space/jobs/"+job.ID+"/candidates/export?format=csv", nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid format. Must be 'xlsx' or 'pdf'", body.Error)
}
