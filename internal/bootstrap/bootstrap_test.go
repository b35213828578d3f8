package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/envisys/internal/config"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type viewBody struct {
	Page          string `json:"page"`
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
	ThesisID      string `json:"thesisId"`
	GroupID       string `json:"groupId"`
	Redirected    bool   `json:"redirected"`
	Chrome        *struct {
		Menu []struct {
			Page   string `json:"page"`
			Active bool   `json:"active"`
		} `json:"menu"`
		RoleBadge string `json:"roleBadge"`
	} `json:"chrome"`
	Content json.RawMessage `json:"content"`
}

type transitionBody struct {
	State struct {
		Page          string `json:"page"`
		SelectionKind string `json:"selectionKind"`
		SelectionID   string `json:"selectionId"`
	} `json:"state"`
	View viewBody `json:"view"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("ENVISYS_SESSION_SECRET", "test-secret")
	t.Setenv("ENVISYS_SERVER_MODE", "test")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	lgr := zerolog.Nop()
	catalog, err := LoadCatalog(cfg, lgr)
	require.NoError(t, err)
	deps, err := BuildDependencies(cfg, catalog, lgr)
	require.NoError(t, err)
	router, err := SetupRouter(cfg, deps, lgr)
	require.NoError(t, err)
	return router
}

func do(t *testing.T, r http.Handler, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func login(t *testing.T, r http.Handler, role string) (string, viewBody) {
	t.Helper()
	status, env := do(t, r, http.MethodPost, "/api/v1/session/login", "", gin.H{"role": role})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Token   string   `json:"token"`
		View    viewBody `json:"view"`
		Session struct {
			Authenticated bool   `json:"authenticated"`
			Role          string `json:"role"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	assert.True(t, data.Session.Authenticated)
	return data.Token, data.View
}

func transition(t *testing.T, r http.Handler, method, path, token string, body interface{}) transitionBody {
	t.Helper()
	status, env := do(t, r, method, path, token, body)
	require.Equal(t, http.StatusOK, status, "%+v", env.Error)
	var tb transitionBody
	require.NoError(t, json.Unmarshal(env.Data, &tb))
	return tb
}

func TestLoginLandsOnDashboardForEveryRole(t *testing.T) {
	r := newTestRouter(t)

	for _, role := range []string{"student", "adviser", "panel", "admin"} {
		t.Run(role, func(t *testing.T) {
			_, view := login(t, r, role)
			assert.Equal(t, "dashboard", view.Page)
			assert.Equal(t, role, view.Role)
			assert.True(t, view.Authenticated)
			require.NotNil(t, view.Chrome)
		})
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	r := newTestRouter(t)

	status, env := do(t, r, http.MethodPost, "/api/v1/session/login", "", gin.H{"role": "dean"})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NAV_003", env.Error.Code)

	status, env = do(t, r, http.MethodPost, "/api/v1/session/login", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestViewWithoutSessionIsLogin(t *testing.T) {
	r := newTestRouter(t)

	status, env := do(t, r, http.MethodGet, "/api/v1/view", "", nil)
	require.Equal(t, http.StatusOK, status)
	var view viewBody
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "login", view.Page)
	assert.False(t, view.Authenticated)
	assert.Nil(t, view.Chrome)

	status, env = do(t, r, http.MethodGet, "/api/v1/view", "garbage", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "login", view.Page)
}

func TestPanelGroupDetailScenario(t *testing.T) {
	r := newTestRouter(t)
	token, _ := login(t, r, "panel")

	tb := transition(t, r, http.MethodPost, "/api/v1/navigation/navigate", token, gin.H{"page": "groups"})
	assert.Equal(t, "groups", tb.View.Page)

	tb = transition(t, r, http.MethodPost, "/api/v1/navigation/groups/3", token, nil)
	assert.Equal(t, "group-detail", tb.View.Page)
	assert.Equal(t, "3", tb.View.GroupID)
	assert.Equal(t, "panel", tb.View.Role)
	assert.Equal(t, "group", tb.State.SelectionKind)

	status, env := do(t, r, http.MethodGet, "/api/v1/view", token, nil)
	require.Equal(t, http.StatusOK, status)
	var view viewBody
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "group-detail", view.Page)
	assert.Equal(t, "3", view.GroupID)
	for _, item := range view.Chrome.Menu {
		assert.Equal(t, item.Page == "groups", item.Active, item.Page)
	}
}

func TestNavigationErrors(t *testing.T) {
	r := newTestRouter(t)
	token, _ := login(t, r, "student")

	status, env := do(t, r, http.MethodPost, "/api/v1/navigation/navigate", token, gin.H{"page": "reports"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NAV_001", env.Error.Code)

	status, env = do(t, r, http.MethodPost, "/api/v1/navigation/navigate", token, gin.H{"page": "thesis-detail"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "NAV_002", env.Error.Code)

	status, env = do(t, r, http.MethodPost, "/api/v1/navigation/groups/%20", token, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "NAV_002", env.Error.Code)

	status, _ = do(t, r, http.MethodPost, "/api/v1/navigation/back", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestThesisDetailAndBack(t *testing.T) {
	r := newTestRouter(t)
	token, _ := login(t, r, "student")

	tb := transition(t, r, http.MethodPost, "/api/v1/navigation/theses/42", token, nil)
	assert.Equal(t, "thesis-detail", tb.View.Page)
	var content struct {
		NotFound bool `json:"notFound"`
	}
	require.NoError(t, json.Unmarshal(tb.View.Content, &content))
	assert.True(t, content.NotFound)

	tb = transition(t, r, http.MethodPost, "/api/v1/navigation/navigate", token, gin.H{"page": "settings"})
	assert.Equal(t, "settings", tb.View.Page)
	assert.Equal(t, "thesis", tb.State.SelectionKind)

	tb = transition(t, r, http.MethodPost, "/api/v1/navigation/back", token, nil)
	assert.Equal(t, "settings", tb.View.Page)

	tb = transition(t, r, http.MethodPost, "/api/v1/navigation/navigate", token, gin.H{"page": "thesis-detail"})
	assert.Equal(t, "42", tb.View.ThesisID)

	tb = transition(t, r, http.MethodPost, "/api/v1/navigation/back", token, nil)
	assert.Equal(t, "thesis", tb.View.Page)
	assert.Equal(t, "none", tb.State.SelectionKind)
}

func TestActionsAreGatedByRole(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		role   string
		action string
		status int
	}{
		{"student", "create-thesis", http.StatusOK},
		{"student", "create-group", http.StatusForbidden},
		{"adviser", "create-group", http.StatusOK},
		{"adviser", "edit-thesis", http.StatusForbidden},
		{"panel", "create-thesis", http.StatusForbidden},
		{"admin", "edit-thesis", http.StatusOK},
		{"admin", "delete-group", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.action, func(t *testing.T) {
			token, _ := login(t, r, tt.role)
			status, _ := do(t, r, http.MethodPost, "/api/v1/actions/"+tt.action, token, nil)
			assert.Equal(t, tt.status, status)
		})
	}

	token, _ := login(t, r, "adviser")
	status, env := do(t, r, http.MethodGet, "/api/v1/capabilities", token, nil)
	require.Equal(t, http.StatusOK, status)
	var caps struct {
		Actions        []string `json:"actions"`
		CanCreateGroup bool     `json:"canCreateGroup"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &caps))
	assert.Equal(t, []string{"create-group"}, caps.Actions)
	assert.True(t, caps.CanCreateGroup)
}

func TestLogoutRevokesSession(t *testing.T) {
	r := newTestRouter(t)
	token, _ := login(t, r, "admin")

	status, env := do(t, r, http.MethodPost, "/api/v1/session/logout", token, nil)
	require.Equal(t, http.StatusOK, status)
	var data struct {
		Session struct {
			Authenticated bool   `json:"authenticated"`
			Role          string `json:"role"`
		} `json:"session"`
		View viewBody `json:"view"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.False(t, data.Session.Authenticated)
	assert.Equal(t, "student", data.Session.Role)
	assert.Equal(t, "login", data.View.Page)

	status, env = do(t, r, http.MethodPost, "/api/v1/navigation/navigate", token, gin.H{"page": "dashboard"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_007", env.Error.Code)

	status, env = do(t, r, http.MethodGet, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"authenticated":false`)
}

func TestThesisListFiltersOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token, _ := login(t, r, "adviser")
	transition(t, r, http.MethodPost, "/api/v1/navigation/navigate", token, gin.H{"page": "thesis"})

	status, env := do(t, r, http.MethodGet, "/api/v1/view?status=Approved", token, nil)
	require.Equal(t, http.StatusOK, status)
	var view viewBody
	require.NoError(t, json.Unmarshal(env.Data, &view))

	var content struct {
		Theses    []struct{ ID string } `json:"theses"`
		CanCreate bool                  `json:"canCreate"`
	}
	require.NoError(t, json.Unmarshal(view.Content, &content))
	require.Len(t, content.Theses, 1)
	assert.Equal(t, "2", content.Theses[0].ID)
	assert.False(t, content.CanCreate)
}

func TestHealthAndPing(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
