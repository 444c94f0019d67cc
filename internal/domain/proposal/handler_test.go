package proposal

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dnfapi/internal/database"
	"dnfapi/internal/pkg/logger"
)

func setupTestRouter(t *testing.T, repo Repository, exposeDetails bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewHandler(NewService(repo, logger.Discard()), exposeDetails, nil, logger.Discard())
	RegisterRoutes(r.Group("/api"), h)
	return r
}

func doJSONRequest(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/proposta", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func count(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&Proposal{}).Count(&n).Error)
	return n
}

func TestSubmitProposal_CreateThenConflict(t *testing.T) {
	db := openTestDB(t, database.DefaultPool())
	r := setupTestRouter(t, NewRepository(db), false)

	rr := doJSONRequest(r, `{"nome":"Ana","email":"ana@x.com","telefone":"11999999999","empresa":"ACME","mensagem":"Olá"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decode(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, msgCreated, body["message"])

	rr = doJSONRequest(r, `{"nome":"Ana 2","email":"ana@x.com","telefone":"11888888888"}`)
	require.Equal(t, http.StatusConflict, rr.Code)
	body = decode(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, CodeProposalExists, body["code"])
	assert.Equal(t, msgExists, body["error"])
	assert.Equal(t, int64(1), count(t, db))

	rr = doJSONRequest(r, `{"nome":"Bia","email":"bia@x.com","telefone":"111"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2), count(t, db))
}

func TestSubmitProposal_MissingFields(t *testing.T) {
	db := openTestDB(t, database.DefaultPool())
	r := setupTestRouter(t, NewRepository(db), false)

	for _, payload := range []string{
		`{"nome":"Ana","email":"ana@x.com"}`,
		`{"nome":"Ana","telefone":"11"}`,
		`{"email":"ana@x.com","telefone":"11"}`,
		`{"nome":"Ana","email":"ana@x.com","telefone":""}`,
		`[1,2]`,
	} {
		rr := doJSONRequest(r, payload)
		require.Equal(t, http.StatusBadRequest, rr.Code, "payload %q", payload)
		assert.Equal(t, msgMissingFields, decode(t, rr)["error"])
	}
	assert.Zero(t, count(t, db))
}

func TestSubmitProposal_StoreFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("dial tcp: connection refused"))

	rr := doJSONRequest(setupTestRouter(t, repo, false), `{"nome":"Ana","email":"ana@x.com","telefone":"11"}`)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, msgInternal, body["error"])
	assert.NotContains(t, body, "details")

	rr = doJSONRequest(setupTestRouter(t, repo, true), `{"nome":"Ana","email":"ana@x.com","telefone":"11"}`)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, decode(t, rr)["details"], "connection refused")
}
