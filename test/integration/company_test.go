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

func TestCompanies(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _, _ := helpers.CreateAndLoginEmployer(t, ts)

	t.Run("creating a company requires authentication", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/companies", "", map[string]interface{}{
			"name": "Anonymous Inc.",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("create and fetch a company", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/companies", employerToken, map[string]interface{}{
			"name":     "Orbit Labs",
			"industry": "Software",
			"location": "Berlin",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)

		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

		res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, bodyStr, "Orbit Labs")

		res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/companies", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, bodyStr, "Orbit Labs")
	})

	t.Run("unknown company is a 404", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/companies/00000000-0000-0000-0000-000000000000", "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("categories are listed alphabetically", func(t *testing.T) {
		for _, name := range []string{"Engineering", "Design"} {
			require.NoError(t, ts.DB.Create(&models.JobCategory{Name: name}).Error)
		}

		res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/categories", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var parsed struct {
			Data []models.JobCategory `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
		require.Len(t, parsed.Data, 2)
		assert.Equal(t, "Design", parsed.Data[0].Name)
		assert.Equal(t, "Engineering", parsed.Data[1].Name)
	})
}
