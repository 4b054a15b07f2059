package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/mock"
	"github.com/MKhiriev/go-spellbook/internal/service"
	"github.com/MKhiriev/go-spellbook/internal/validators"
	"github.com/MKhiriev/go-spellbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// browser replays the session cookie between requests like a browser does.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func (b *browser) do(method, target, body string) *httptest.ResponseRecorder {
	b.t.Helper()
	req := formRequest(method, target, body)
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		b.cookies = cookies
	}
	return rec
}

func TestInit_AccountAndCharacterFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCharacterRepository(ctrl)

	h := newTestHandler(t, nil)
	h.services = &service.Services{
		AccountService:   service.NewAccountService(repo, h.sessions.Usernames(), logger.Nop()),
		CharacterService: service.NewCharacterService(repo, validators.NewCharacterValidator(), logger.Nop()),
		AppInfoService:   &fakeAppInfoService{version: "1.0.0"},
	}
	b := &browser{t: t, handler: h.Init()}

	row := models.NewCharacter("wizard1", "gandalf", "Gandalf")
	repo.EXPECT().ListUsernames(gomock.Any()).Return([]string{"bard"}, nil)
	repo.EXPECT().CreateCharacter(gomock.Any(), row).Return(row, nil)
	repo.EXPECT().UpdateCharacter(gomock.Any(), "wizard1", "gandalf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, u models.CharacterUpdate) error {
			row.Class = u.Class
			return nil
		})
	repo.EXPECT().GetCharacter(gomock.Any(), "wizard1", "gandalf").DoAndReturn(
		func(context.Context, string, string) (models.Character, error) { return row, nil },
	)

	rec := b.do(http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["bard"]`, rec.Body.String())

	rec = b.do(http.MethodPost, "/newaccount", "username=bard")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = b.do(http.MethodPost, "/newaccount", "username=wizard1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"wizard1"}`, rec.Body.String())

	rec = b.do(http.MethodPost, "/newcharacter", "proper_name=Gandalf&snake_name=gandalf")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = b.do(http.MethodPost, "/savecharacter", "class=wizard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Character update successful.", rec.Body.String())

	rec = b.do(http.MethodGet, "/getcharacter/gandalf", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"username":"wizard1","snake_name":"gandalf","proper_name":"Gandalf","border_color":"gold","spells":null,"class":"wizard","locked":"false"}]`,
		rec.Body.String())

	rec = b.do(http.MethodGet, "/login/wizard1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Already logged into that account.", rec.Body.String())

	assert.Equal(t, 1, h.sessions.Len(), "every request reused the same session")
}

// Two browsers get independent sessions over one shared username mirror.
func TestInit_SessionsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCharacterRepository(ctrl)

	h := newTestHandler(t, nil)
	h.services = &service.Services{
		AccountService: service.NewAccountService(repo, h.sessions.Usernames(), logger.Nop()),
	}
	router := h.Init()
	alice := &browser{t: t, handler: router}
	bob := &browser{t: t, handler: router}

	require.Equal(t, http.StatusOK, alice.do(http.MethodPost, "/newaccount", "username=a").Code)

	rec := bob.do(http.MethodPost, "/newaccount", "username=a")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = bob.do(http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "bob never logged in")

	rec = alice.do(http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out of account a", rec.Body.String())

	assert.Equal(t, 2, h.sessions.Len())
}

func TestInit_Routes(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{version: "1.0.0"}})
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "version", method: http.MethodGet, path: "/api/version", wantStatus: http.StatusOK},
		{name: "newaccount is POST only", method: http.MethodGet, path: "/newaccount", wantStatus: http.StatusMethodNotAllowed},
		{name: "login is GET only", method: http.MethodPost, path: "/login/wizard1", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route without static dir", method: http.MethodGet, path: "/index.html", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInit_ServesStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Spellbook</h1>"), 0o600))

	h := newTestHandler(t, &service.Services{})
	h.server.StaticDir = dir

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Spellbook"))
}
