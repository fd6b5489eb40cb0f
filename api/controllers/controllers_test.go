package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	"github.com/angelmondragon/skb-upsell-backend/pkg/config"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func newQuoteService(t *testing.T) quotes.Service {
	t.Helper()
	svc, err := quotes.NewService(pricing.NewEngine(nil), nil, logger.Nop())
	require.NoError(t, err)
	return svc
}

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "dev"}}
}

func TestHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive(testConfig())(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get(envHeader))
}

func TestHealthReady(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthReady(testConfig(), nil, stubPinger{})(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HealthReady(testConfig(), nil, stubPinger{err: errors.New("down")})(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	HealthReady(testConfig(), nil, nil)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCatalogListsBothFamilies(t *testing.T) {
	rec := httptest.NewRecorder()
	Catalog(newQuoteService(t), nil)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data catalogResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	data := envelope.Data
	require.Len(t, data.Families, 2)
	assert.Equal(t, enums.FamilyIPTV, data.Families[0].Family)
	assert.Equal(t, enums.FamilyCATV, data.Families[1].Family)
	assert.Equal(t, catalog.InternetID500M, data.DefaultInternetID)
	assert.Equal(t, 2200, data.SecondaryStb.Price)
	assert.Equal(t, []int{0, 1100, 2200, 3300, 4400, 5500, 6600, 7700, 8800}, data.PrepaidOptions)
	assert.Len(t, data.Discounts, 5)
	assert.NotEmpty(t, data.InternetPlans)
	assert.NotEmpty(t, data.AddOns)

	for _, fam := range data.Families {
		assert.NotEmpty(t, fam.TvPlans)
		assert.NotEmpty(t, fam.StbOptions)
		for _, tv := range fam.TvPlans {
			assert.Equal(t, fam.Family, tv.Family)
		}
	}
}

func TestCatalogWithoutService(t *testing.T) {
	rec := httptest.NewRecorder()
	Catalog(nil, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPresetsResolveSelections(t *testing.T) {
	rec := httptest.NewRecorder()
	Presets(newQuoteService(t), nil)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []presetCard `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 3)

	for i, want := range enums.Presets() {
		card := envelope.Data[i]
		assert.Equal(t, want, card.Preset)
		assert.Equal(t, want.Label(), card.Label)
		assert.Equal(t, card.InternetID, card.Selection.InternetID)
		assert.Equal(t, card.TvID, card.Selection.TvID)
		assert.Equal(t, enums.FamilyIPTV, card.Selection.Family)
	}
	assert.Equal(t, 62700, envelope.Data[2].FinalPrice)
}
