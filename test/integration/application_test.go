package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"
)

func TestApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, employer, company := helpers.CreateAndLoginEmployer(t, ts)
	talentToken, _ := helpers.CreateAndLoginTalent(t, ts)

	activeJob := helpers.CreateJob(t, ts.DB, employer.ID, company.ID, "Go Developer", models.JobStatusActive)
	draftJob := helpers.CreateJob(t, ts.DB, employer.ID, company.ID, "Unpublished Role", models.JobStatusDraft)

	var applicationID string

	t.Run("talent applies once", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", talentToken, map[string]interface{}{
			"job_id":       activeJob.ID,
			"cover_letter": "I would love to work on this.",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)

		var created struct {
			ID     string                   `json:"id"`
			Status models.ApplicationStatus `json:"status"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
		assert.Equal(t, models.ApplicationStatusPending, created.Status)
		applicationID = created.ID
	})

	t.Run("second application to the same job conflicts", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", talentToken, map[string]interface{}{
			"job_id": activeJob.ID,
		})
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, bodyStr, "already applied")
	})

	t.Run("cannot apply to an unpublished job", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", talentToken, map[string]interface{}{
			"job_id": draftJob.ID,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("talent lists own applications", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/applications", talentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, bodyStr, applicationID)
	})

	t.Run("employer reviews applications for the job", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/employer/jobs/"+activeJob.ID+"/applications", employerToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, bodyStr, applicationID)

		res, bodyStr = ts.SendRequest(t, http.MethodPatch, "/api/v1/employer/applications/"+applicationID+"/status", employerToken, map[string]interface{}{
			"status": "interview",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)
	})

	t.Run("employer cannot mark an application withdrawn", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/employer/applications/"+applicationID+"/status", employerToken, map[string]interface{}{
			"status": "withdrawn",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("talent withdraws and the employer loses access", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+applicationID+"/withdraw", talentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		// Withdrawing twice fails
		res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+applicationID+"/withdraw", talentToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		// The employer can no longer progress it
		res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/employer/applications/"+applicationID+"/status", employerToken, map[string]interface{}{
			"status": "reviewed",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("a different talent cannot withdraw someone else's application", func(t *testing.T) {
		otherTalentToken, _ := helpers.CreateAndLoginTalent(t, ts)

		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", otherTalentToken, map[string]interface{}{
			"job_id": activeJob.ID,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)

		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

		res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+created.ID+"/withdraw", talentToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})
}
