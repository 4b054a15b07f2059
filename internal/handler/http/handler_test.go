package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/service"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/MKhiriev/go-spellbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "spellbook_session"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Version:        "test-version",
			SessionSignKey: "test-sign-key",
			SessionIssuer:  "go-spellbook-test",
			SessionTTL:     time.Hour,
			SessionCookie:  testCookieName,
		},
		Server: config.Server{HTTPAddress: ":0"},
	}
}

// stubIDs hands out ids from a fixed sequence, then repeats the last one.
type stubIDs struct {
	ids []string
	n   int
}

func (s *stubIDs) Generate() string {
	id := s.ids[min(s.n, len(s.ids)-1)]
	s.n++
	return id
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	sessions := session.NewManager(time.Hour, &stubIDs{ids: []string{"session-1", "session-2", "session-3"}})
	h := NewHandler(services, sessions, testConfig(), logger.Nop())
	h.idFactory = &stubIDs{ids: []string{"trace-id"}}
	return h
}

// withTestSession returns r carrying s in its context, as withSession does.
func withTestSession(r *http.Request, s *session.Session) *http.Request {
	return r.WithContext(utils.WithSession(r.Context(), s))
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ── service fakes ────────────────────────────────────────────────────────────

type fakeAccountService struct {
	listUsersFn func(ctx context.Context) ([]string, error)
	createFn    func(ctx context.Context, s *session.Session, username string) (models.Account, error)
	loginFn     func(ctx context.Context, s *session.Session, username string) ([]models.Character, error)
	logoutFn    func(ctx context.Context, s *session.Session) (models.Account, error)
	deleteFn    func(ctx context.Context, s *session.Session) (models.Account, error)
}

func (f *fakeAccountService) ListUsers(ctx context.Context) ([]string, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeAccountService) CreateAccount(ctx context.Context, s *session.Session, username string) (models.Account, error) {
	return f.createFn(ctx, s, username)
}

func (f *fakeAccountService) Login(ctx context.Context, s *session.Session, username string) ([]models.Character, error) {
	return f.loginFn(ctx, s, username)
}

func (f *fakeAccountService) Logout(ctx context.Context, s *session.Session) (models.Account, error) {
	return f.logoutFn(ctx, s)
}

func (f *fakeAccountService) DeleteAccount(ctx context.Context, s *session.Session) (models.Account, error) {
	return f.deleteFn(ctx, s)
}

type fakeCharacterService struct {
	createFn func(ctx context.Context, s *session.Session, properName, snakeName string) (models.Character, error)
	selectFn func(ctx context.Context, s *session.Session, snakeName string) (models.Character, error)
	updateFn func(ctx context.Context, s *session.Session, update models.CharacterUpdate) error
	deleteFn func(ctx context.Context, s *session.Session) (models.DeletedCharacter, error)
}

func (f *fakeCharacterService) CreateCharacter(ctx context.Context, s *session.Session, properName, snakeName string) (models.Character, error) {
	return f.createFn(ctx, s, properName, snakeName)
}

func (f *fakeCharacterService) SelectCharacter(ctx context.Context, s *session.Session, snakeName string) (models.Character, error) {
	return f.selectFn(ctx, s, snakeName)
}

func (f *fakeCharacterService) UpdateCharacter(ctx context.Context, s *session.Session, update models.CharacterUpdate) error {
	return f.updateFn(ctx, s, update)
}

func (f *fakeCharacterService) DeleteCharacter(ctx context.Context, s *session.Session) (models.DeletedCharacter, error) {
	return f.deleteFn(ctx, s)
}

type fakeSpellService struct {
	getSpellFn        func(ctx context.Context, key string) (models.Spell, error)
	listSpellsFn      func(ctx context.Context, filter models.SpellFilter) (models.APIReferenceList, error)
	getClassFn        func(ctx context.Context, key string) (models.Class, error)
	listClassSpellsFn func(ctx context.Context, key string) (models.APIReferenceList, error)
}

func (f *fakeSpellService) GetSpell(ctx context.Context, key string) (models.Spell, error) {
	return f.getSpellFn(ctx, key)
}

func (f *fakeSpellService) ListSpells(ctx context.Context, filter models.SpellFilter) (models.APIReferenceList, error) {
	return f.listSpellsFn(ctx, filter)
}

func (f *fakeSpellService) GetClass(ctx context.Context, key string) (models.Class, error) {
	return f.getClassFn(ctx, key)
}

func (f *fakeSpellService) ListClassSpells(ctx context.Context, key string) (models.APIReferenceList, error) {
	return f.listClassSpellsFn(ctx, key)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	sessions := session.NewManager(time.Hour, utils.NewUUIDGenerator())

	h := NewHandler(services, sessions, testConfig(), logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, sessions, h.sessions)
	assert.Equal(t, testCookieName, h.cookie.name)
	assert.Equal(t, time.Hour, h.cookie.ttl)
	assert.NotNil(t, h.idFactory)
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{version: "v1.2.3-beta+build.42"}})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3-beta+build.42", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
