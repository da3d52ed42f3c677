package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

// CreateUser inserts a user, hashing the raw password on the way in.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash test password")

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Test User",
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	user := CreateUser(t, ts.DB, email, password, role)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, body: "+bodyStr)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateAndLoginTalent creates a talent with a unique email and logs in.
func CreateAndLoginTalent(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("talent_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, email, "password123", models.UserRoleTalent)
}

// CreateAndLoginEmployer creates an employer with a unique email plus a
// company for its postings.
func CreateAndLoginEmployer(t *testing.T, ts *TestServer) (string, *models.User, *models.Company) {
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, email, "password123", models.UserRoleEmployer)

	company := &models.Company{
		Name:      "Test Company Inc.",
		CreatedBy: &user.ID,
	}
	require.NoError(t, ts.DB.Create(company).Error, "failed to create test company")

	return token, user, company
}

// CreateJob inserts a posting directly, bypassing the draft workflow.
func CreateJob(t *testing.T, db *gorm.DB, employerID, companyID, title string, status models.JobStatus) *models.Job {
	job := &models.Job{
		Title:           title,
		Description:     "Test description for " + title,
		CompanyID:       companyID,
		EmployerID:      employerID,
		JobType:         models.JobTypeFullTime,
		ExperienceLevel: models.ExperienceMid,
		Currency:        "USD",
		Status:          status,
	}
	require.NoError(t, db.Create(job).Error, "failed to create test job")
	return job
}
