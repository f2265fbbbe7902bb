package controllers_test

import (
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gacha-backend/controllers"
	"gacha-backend/gacha"
	gachamock "gacha-backend/gacha/mock"
	"gacha-backend/models"
	"gacha-backend/routes"
)

var fullCatalog = []models.Character{
	{MasterNumber: 101, Rarity: 1, Name: "Slime"},
	{MasterNumber: 201, Rarity: 2, Name: "Goblin"},
	{MasterNumber: 301, Rarity: 3, Name: "Knight"},
	{MasterNumber: 401, Rarity: 4, Name: "Mage"},
	{MasterNumber: 501, Rarity: 5, Name: "Dragon"},
	{MasterNumber: 601, Rarity: 6, Name: "Phoenix"},
}

type pullResponse struct {
	Results []models.Character `json:"results"`
	Weights map[string]float64 `json:"weights"`
}

func newGachaApp(t *testing.T) (*fiber.App, *gachamock.MockCatalogProvider) {
	t.Helper()

	provider := gachamock.NewMockCatalogProvider(gomock.NewController(t))
	service, err := gacha.NewService(&gacha.ServiceConfig{
		Provider:  provider,
		Weights:   gacha.DefaultWeights(),
		MaxPull:   100,
		NewSource: func() gacha.RandomSource { return gacha.NewSeededSource(7) },
	})
	require.NoError(t, err)

	app := fiber.New()
	routes.GachaRoutes(app, controllers.NewGachaController(service))
	return app, provider
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func TestPullDefaultsToTenDraws(t *testing.T) {
	app, provider := newGachaApp(t)
	provider.EXPECT().FetchDraftablePool(gomock.Any()).Return(fullCatalog, nil)

	status, body := doRequest(t, app, "POST", "/api/gacha/pull", "")
	require.Equal(t, fiber.StatusOK, status)

	var resp pullResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Results, 10)
	assert.Equal(t, map[string]float64{"1": 40, "2": 30, "3": 15, "4": 10, "5": 4, "6": 1}, resp.Weights)
}

func TestPullWithCount(t *testing.T) {
	app, provider := newGachaApp(t)
	provider.EXPECT().FetchDraftablePool(gomock.Any()).Return(fullCatalog, nil).Times(2)

	status, body := doRequest(t, app, "POST", "/api/gacha/pull", `{"count": 25}`)
	require.Equal(t, fiber.StatusOK, status)
	var resp pullResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Results, 25)

	status, body = doRequest(t, app, "POST", "/api/gacha/pull", `{"count": 0}`)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestPullRejectsBadRequests(t *testing.T) {
	app, _ := newGachaApp(t)

	for _, body := range []string{`{"count": -1}`, `{"count": 101}`, `{"count": "ten"}`, `{not json`} {
		status, _ := doRequest(t, app, "POST", "/api/gacha/pull", body)
		assert.Equal(t, fiber.StatusBadRequest, status, "body=%s", body)
	}
}

func TestPullFailuresAreServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		catalog []models.Character
		err     error
	}{
		{name: "empty catalog", catalog: []models.Character{}},
		{name: "store unavailable", err: errors.New("connection refused")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, provider := newGachaApp(t)
			provider.EXPECT().FetchDraftablePool(gomock.Any()).Return(tc.catalog, tc.err)

			status, body := doRequest(t, app, "POST", "/api/gacha/pull", `{"count": 10}`)
			assert.Equal(t, fiber.StatusInternalServerError, status)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestGetWeights(t *testing.T) {
	app, _ := newGachaApp(t)

	status, body := doRequest(t, app, "GET", "/api/gacha/weights", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"weights":{"1":40,"2":30,"3":15,"4":10,"5":4,"6":1}}`, string(body))
}

func TestGetCharacters(t *testing.T) {
	app, provider := newGachaApp(t)
	provider.EXPECT().FetchDraftablePool(gomock.Any()).Return(fullCatalog[:2], nil)

	status, body := doRequest(t, app, "GET", "/api/gacha/characters", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"characters":[
		{"masternumber":101,"rarity":1,"name":"Slime","type":0},
		{"masternumber":201,"rarity":2,"name":"Goblin","type":0}
	]}`, string(body))
}

func TestGetCharactersFailure(t *testing.T) {
	app, provider := newGachaApp(t)
	provider.EXPECT().FetchDraftablePool(gomock.Any()).Return(nil, gacha.ErrDataUnavailable)

	status, _ := doRequest(t, app, "GET", "/api/gacha/characters", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestGetRates(t *testing.T) {
	app, provider := newGachaApp(t)
	provider.EXPECT().FetchDraftablePool(gomock.Any()).Return(fullCatalog, nil)

	status, body := doRequest(t, app, "GET", "/api/gacha/rates", "")
	require.Equal(t, fiber.StatusOK, status)

	var resp struct {
		TotalWeight float64          `json:"total_weight"`
		Rates       []gacha.TierRate `json:"rates"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 100.0, resp.TotalWeight)
	require.Len(t, resp.Rates, 6)
	assert.InDelta(t, 0.4, resp.Rates[0].Probability, 1e-12)
	assert.Equal(t, 1, resp.Rates[0].Count)
}

func TestGetBadge(t *testing.T) {
	app, _ := newGachaApp(t)

	req := httptest.NewRequest("GET", "/api/gacha/badge/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	_, err = png.Decode(resp.Body)
	require.NoError(t, err)

	status, _ := doRequest(t, app, "GET", "/api/gacha/badge/9", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, "GET", "/api/gacha/badge/gold", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
