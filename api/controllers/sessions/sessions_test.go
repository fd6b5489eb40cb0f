package sessions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	sessionsvc "github.com/angelmondragon/skb-upsell-backend/internal/sessions"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
)

const testSessionID = "5d0f7c1e-9b1a-4f3e-8f61-0c2b9c4b7a10"

type stubSessionService struct {
	view        *sessionsvc.View
	err         error
	lastCreate  sessionsvc.CreateInput
	lastEdit    sessionsvc.Edit
	lastID      string
	deleteCalls int
}

func (s *stubSessionService) Create(ctx context.Context, input sessionsvc.CreateInput) (*sessionsvc.View, error) {
	s.lastCreate = input
	return s.view, s.err
}

func (s *stubSessionService) Get(ctx context.Context, id string) (*sessionsvc.View, error) {
	s.lastID = id
	return s.view, s.err
}

func (s *stubSessionService) Edit(ctx context.Context, id string, edit sessionsvc.Edit) (*sessionsvc.View, error) {
	s.lastID = id
	s.lastEdit = edit
	return s.view, s.err
}

func (s *stubSessionService) Delete(ctx context.Context, id string) error {
	s.lastID = id
	s.deleteCalls++
	return s.err
}

func newRouter(svc sessionsvc.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/sessions", SessionCreate(svc, nil))
	r.Get("/sessions/{sessionId}", SessionFetch(svc, nil))
	r.Patch("/sessions/{sessionId}", SessionEdit(svc, nil))
	r.Delete("/sessions/{sessionId}", SessionDelete(svc, nil))
	return r
}

func do(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func sampleView() *sessionsvc.View {
	return &sessionsvc.View{Session: sessionsvc.Session{ID: testSessionID, QuotedFee: 50000}}
}

func TestSessionCreateWithEmptyBody(t *testing.T) {
	svc := &stubSessionService{view: sampleView()}
	rec := do(newRouter(svc), http.MethodPost, "/sessions", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.lastCreate.Preset)
	assert.Nil(t, svc.lastCreate.Family)

	var envelope struct {
		Data sessionsvc.View `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Equal(t, testSessionID, envelope.Data.Session.ID)
}

func TestSessionCreateMapsPayload(t *testing.T) {
	svc := &stubSessionService{view: sampleView()}
	rec := do(newRouter(svc), http.MethodPost, "/sessions", `{"preset":"light_2","family":"CATV","quoted_fee":45000}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastCreate.Preset)
	require.NotNil(t, svc.lastCreate.Family)
	assert.Equal(t, enums.PresetLight2, *svc.lastCreate.Preset)
	assert.Equal(t, enums.FamilyCATV, *svc.lastCreate.Family)
	assert.Equal(t, 45000, svc.lastCreate.QuotedFee)
}

func TestSessionCreateRejectsUnknownPreset(t *testing.T) {
	svc := &stubSessionService{view: sampleView()}
	rec := do(newRouter(svc), http.MethodPost, "/sessions", `{"preset":"giga_9"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionFetchPassesID(t *testing.T) {
	svc := &stubSessionService{view: sampleView()}
	rec := do(newRouter(svc), http.MethodGet, "/sessions/"+testSessionID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testSessionID, svc.lastID)
}

func TestSessionFetchNotFound(t *testing.T) {
	svc := &stubSessionService{err: pkgerrors.New(pkgerrors.CodeNotFound, "session not found")}
	rec := do(newRouter(svc), http.MethodGet, "/sessions/"+testSessionID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionEditMapsBatch(t *testing.T) {
	svc := &stubSessionService{view: sampleView()}
	rec := do(newRouter(svc), http.MethodPatch, "/sessions/"+testSessionID, `{
		"family": "IPTV",
		"tv_id": "tv_all",
		"toggle_add_on": ["addon_wings"],
		"mobile_bundled": true,
		"prepaid_tv1": 2200,
		"quoted_fee": 0
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	edit := svc.lastEdit
	require.NotNil(t, edit.Family)
	assert.Equal(t, enums.FamilyIPTV, *edit.Family)
	require.NotNil(t, edit.TvID)
	assert.Equal(t, catalog.TvAll, *edit.TvID)
	assert.Equal(t, []string{catalog.AddOnWings}, edit.ToggleAddOns)
	require.NotNil(t, edit.MobileBundled)
	assert.True(t, *edit.MobileBundled)
	require.NotNil(t, edit.PrepaidTv1)
	assert.Equal(t, 2200, *edit.PrepaidTv1)
	require.NotNil(t, edit.QuotedFee)
	assert.Equal(t, 0, *edit.QuotedFee)
	assert.Nil(t, edit.Preset)
	assert.Nil(t, edit.InternetID)
	assert.Nil(t, edit.PrepaidInternet)
}

func TestSessionEditRejectsOffGridPrepaid(t *testing.T) {
	svc := &stubSessionService{view: sampleView()}
	rec := do(newRouter(svc), http.MethodPatch, "/sessions/"+testSessionID, `{"prepaid_internet": 1234}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.lastID, "service must not be called")
}

func TestSessionEditRequiresBody(t *testing.T) {
	svc := &stubSessionService{view: sampleView()}
	rec := do(newRouter(svc), http.MethodPatch, "/sessions/"+testSessionID, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionDelete(t *testing.T) {
	svc := &stubSessionService{}
	rec := do(newRouter(svc), http.MethodDelete, "/sessions/"+testSessionID, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, svc.deleteCalls)
	assert.Equal(t, testSessionID, svc.lastID)
}

func TestSessionHandlersWithoutService(t *testing.T) {
	router := newRouter(nil)
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodPost, "/sessions", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodGet, "/sessions/"+testSessionID, "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodDelete, "/sessions/"+testSessionID, "").Code)
}
