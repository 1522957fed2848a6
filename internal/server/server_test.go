package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakeDB is an in-memory DBClient.
type fakeDB struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*db.User
	resumes map[uuid.UUID]map[uuid.UUID]*types.ResumeRecord // userID -> resumeID -> record
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:   make(map[uuid.UUID]*db.User),
		resumes: make(map[uuid.UUID]map[uuid.UUID]*types.ResumeRecord),
	}
}

func (f *fakeDB) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID: id, Name: name, Email: email, PasswordHash: passwordHash,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[userID], nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeDB) CreateResume(_ context.Context, userID uuid.UUID, rec types.ResumeRecord) (*types.ResumeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec = rec.Normalize()
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	if f.resumes[userID] == nil {
		f.resumes[userID] = make(map[uuid.UUID]*types.ResumeRecord)
	}
	stored := rec
	f.resumes[userID][rec.ID] = &stored
	return &rec, nil
}

func (f *fakeDB) GetResume(_ context.Context, userID, resumeID uuid.UUID) (*types.ResumeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.resumes[userID][resumeID]
	if !ok {
		return nil, nil
	}
	copied := rec.Clone()
	return &copied, nil
}

func (f *fakeDB) ListResumes(_ context.Context, userID uuid.UUID) ([]types.ResumeSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var summaries []types.ResumeSummary
	for _, rec := range f.resumes[userID] {
		summaries = append(summaries, types.ResumeSummary{
			ID: rec.ID, Title: rec.Title, UpdatedAt: rec.UpdatedAt,
		})
	}
	return summaries, nil
}

func (f *fakeDB) UpdateResume(_ context.Context, userID uuid.UUID, rec types.ResumeRecord) (*types.ResumeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.resumes[userID][rec.ID]
	if !ok {
		return nil, nil
	}
	resumeID := rec.ID
	rec = rec.Normalize()
	rec.ID = resumeID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now()
	stored := rec
	f.resumes[userID][resumeID] = &stored
	return &rec, nil
}

func (f *fakeDB) DeleteResume(_ context.Context, userID, resumeID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.resumes[userID][resumeID]; !ok {
		return false, nil
	}
	delete(f.resumes[userID], resumeID)
	return true, nil
}

// fakeImprover returns canned rewrites.
type fakeImprover struct {
	summary string
	bullets []string
	err     error
}

func (f *fakeImprover) Summary(_ context.Context, _ *types.ResumeRecord) (string, error) {
	return f.summary, f.err
}

func (f *fakeImprover) ExperienceBullets(_ context.Context, _ *types.ResumeRecord, _ uuid.UUID) ([]string, error) {
	return f.bullets, f.err
}

func (f *fakeImprover) ProjectBullets(_ context.Context, _ *types.ResumeRecord, _ uuid.UUID) ([]string, error) {
	return f.bullets, f.err
}

// fakeExporter returns a canned PDF and records the requested template.
type fakeExporter struct {
	lastTemplateID string
}

func (f *fakeExporter) Export(_ context.Context, rec types.ResumeRecord, templateID string) (*export.Document, error) {
	f.lastTemplateID = templateID
	return &export.Document{
		Filename:    "My_Resume.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
	}, nil
}

type testEnv struct {
	server   *httptest.Server
	db       *fakeDB
	improver *fakeImprover
	exporter *fakeExporter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-for-server-tests")
	t.Setenv("BCRYPT_COST", "10")

	fdb := newFakeDB()
	improver := &fakeImprover{summary: "Improved summary.", bullets: []string{"Did A", "Did B"}}
	exporter := &fakeExporter{}

	s, err := newServer(fdb, exporter, improver)
	require.NoError(t, err)

	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return &testEnv{server: ts, db: fdb, improver: improver, exporter: exporter}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func (e *testEnv) signup(t *testing.T, name, email, password string) (types.SessionResponse, []byte) {
	t.Helper()
	resp, body := e.request(t, "POST", "/auth/signup", "", types.SignupRequest{
		Name: name, Email: email, Password: password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "signup failed: %s", body)

	var session types.SessionResponse
	require.NoError(t, json.Unmarshal(body, &session))
	return session, body
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.request(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestSignupLoginMe(t *testing.T) {
	env := newTestEnv(t)

	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")
	require.NotNil(t, session.User)
	assert.Equal(t, "Ada", session.User.Name)
	assert.NotEmpty(t, session.Token)

	resp, body := env.request(t, "POST", "/auth/login", "", types.LoginRequest{
		Email: "ada@example.com", Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login types.SessionResponse
	require.NoError(t, json.Unmarshal(body, &login))
	assert.NotEmpty(t, login.Token)

	resp, body = env.request(t, "GET", "/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me types.User
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, session.User.ID, me.ID)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestMe_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.request(t, "GET", "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	resp, body := env.request(t, "POST", "/auth/signup", "", types.SignupRequest{
		Name: "Imposter", Email: "ada@example.com", Password: "another password",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, UserMessage(http.StatusConflict), payload["message"])
}

func TestSignup_Validation(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.request(t, "POST", "/auth/signup", "", types.SignupRequest{
		Name: "Ada", Email: "not-an-email", Password: "correct horse battery",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	resp, _ := env.request(t, "POST", "/auth/login", "", types.LoginRequest{
		Email: "ada@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Unknown account gets the same status
	resp, _ = env.request(t, "POST", "/auth/login", "", types.LoginRequest{
		Email: "nobody@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestResumes_RequireAuth(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.request(t, "GET", "/resumes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestResumeCRUD(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")
	token := session.Token

	// Create
	resp, body := env.request(t, "POST", "/resumes", token, map[string]any{
		"title":   "Backend Resume",
		"summary": "Engineer.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create failed: %s", body)
	var created types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Backend Resume", created.Title)

	// List
	resp, body = env.request(t, "GET", "/resumes", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summaries []types.ResumeSummary
	require.NoError(t, json.Unmarshal(body, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, created.ID, summaries[0].ID)

	// Get
	resp, body = env.request(t, "GET", "/resumes/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, "Engineer.", fetched.Summary)

	// Update
	resp, body = env.request(t, "PUT", "/resumes/"+created.ID.String(), token, map[string]any{
		"title":   "Platform Resume",
		"summary": "Engineer.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "update failed: %s", body)
	var updated types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Platform Resume", updated.Title)
	assert.Equal(t, created.ID, updated.ID)

	// Delete
	resp, _ = env.request(t, "DELETE", "/resumes/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.request(t, "GET", "/resumes/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResumes_ScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	ada, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")
	eve, _ := env.signup(t, "Eve", "eve@example.com", "another password ok")

	resp, body := env.request(t, "POST", "/resumes", ada.Token, map[string]any{"title": "Private"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ = env.request(t, "GET", "/resumes/"+created.ID.String(), eve.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.request(t, "DELETE", "/resumes/"+created.ID.String(), eve.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateResume_SchemaViolations(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	// Wrong type
	resp, _ := env.request(t, "POST", "/resumes", session.Token, map[string]any{"title": "t", "skills": "not an array"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Unknown field
	resp, _ = env.request(t, "POST", "/resumes", session.Token, map[string]any{"title": "t", "nonsense": true})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateResume_BlankTitleAllowed(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	// New records start empty; a blank title is valid stored state and only
	// the export filename substitutes a fallback.
	resp, body := env.request(t, "POST", "/resumes", session.Token, map[string]any{"title": ""})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create failed: %s", body)
	var created types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Empty(t, created.Title)
	require.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateResume_MalformedDateTreatedAsAbsent(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	resp, body := env.request(t, "POST", "/resumes", session.Token, map[string]any{
		"title": "t",
		"experience": []map[string]any{
			{"title": "Engineer", "company": "Acme", "start_date": "banana"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create failed: %s", body)

	var created types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &created))
	require.Len(t, created.Experience, 1)
	assert.Nil(t, created.Experience[0].StartDate)
}

func TestImprove_Summary(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	resp, body := env.request(t, "POST", "/ai/improve", session.Token, map[string]any{
		"section": "summary",
		"context": map[string]any{"title": "t", "summary": "Engineer."},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "improve failed: %s", body)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Improved summary.", payload["improved_text"])
}

func TestImprove_ExperienceBullets(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	entryID := uuid.New()
	resp, body := env.request(t, "POST", "/ai/improve", session.Token, map[string]any{
		"section":  "experience",
		"entry_id": entryID.String(),
		"context": map[string]any{
			"title": "t",
			"experience": []map[string]any{
				{"id": entryID.String(), "title": "Engineer", "company": "Acme", "description": []string{"did x"}},
			},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "improve failed: %s", body)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Did A\nDid B", payload["improved_text"])
}

func TestImprove_BadRequests(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	resp, _ := env.request(t, "POST", "/ai/improve", session.Token, map[string]any{"section": "hobbies"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.request(t, "POST", "/ai/improve", session.Token, map[string]any{
		"section": "experience", "entry_id": "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportResume(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	resp, body := env.request(t, "POST", "/resumes", session.Token, map[string]any{"title": "My Resume"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body = env.request(t, "GET", "/resumes/"+created.ID.String()+"/export?template=modern", session.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "My_Resume.pdf")
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
	assert.Equal(t, "modern", env.exporter.lastTemplateID)
}

func TestExportResume_DefaultTemplate(t *testing.T) {
	env := newTestEnv(t)
	session, _ := env.signup(t, "Ada", "ada@example.com", "correct horse battery")

	resp, body := env.request(t, "POST", "/resumes", session.Token, map[string]any{"title": "t"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created types.ResumeRecord
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ = env.request(t, "GET", "/resumes/"+created.ID.String()+"/export", session.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "classic", env.exporter.lastTemplateID)
}

func TestUserMessage_Fallback(t *testing.T) {
	assert.Equal(t, "Please sign in to continue.", UserMessage(http.StatusUnauthorized))
	assert.Equal(t, "An unexpected error occurred. Please try again.", UserMessage(http.StatusTeapot))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(&ErrEmailAlreadyExists{Email: "a@b.c"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrResumeNotFound{ResumeID: uuid.New()}))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(&ErrUnprocessable{Message: "bad"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
