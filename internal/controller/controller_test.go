package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/pkg/logger"
	"research-gap-be/internal/pkg/metrics"
	"research-gap-be/internal/pkg/serverutils"
	"research-gap-be/internal/repository/implementation"
	"research-gap-be/internal/repository/memory"
	"research-gap-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResearchService struct {
	calls int
}

func (f *fakeResearchService) Search(_ context.Context, topic string) (*dto.ResearchResultResponse, error) {
	f.calls++
	return &dto.ResearchResultResponse{
		Query:              topic,
		Summary:            "A summary.",
		Timeline:           []dto.TimelineData{{Year: 2024, Count: 3}},
		Regions:            []dto.RegionData{},
		Populations:        []dto.PopulationData{},
		Subtopics:          []dto.SubtopicData{},
		Insights:           []string{"gap"},
		SuggestedQuestions: []string{"why?"},
		Degraded:           true,
	}, nil
}

func (f *fakeResearchService) RegenerateInsights(_ context.Context, topic string) (*dto.InsightsResponse, error) {
	f.calls++
	return &dto.InsightsResponse{
		Insights:           []string{"fresh"},
		SuggestedQuestions: []string{"What is the societal impact?"},
		QuestionGroups:     []dto.QuestionGroupResponse{{Group: "Societal Impact", Questions: []string{"What is the societal impact?"}}},
	}, nil
}

func newApp(register func(api fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	register(app.Group("/api"))
	return app
}

func decode(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestResearchController_Search(t *testing.T) {
	svc := &fakeResearchService{}
	app := newApp(NewResearchController(svc).RegisterRoutes)

	code, body := decode(t, app, "GET", "/api/search?topic=Mental%20Health%20in%20Africa", "")

	assert.Equal(t, 200, code)
	assert.Equal(t, "Mental Health in Africa", body["query"])
	assert.Equal(t, true, body["degraded"])
	assert.Equal(t, []interface{}{map[string]interface{}{"year": float64(2024), "count": float64(3)}}, body["timeline"])
	assert.Contains(t, body, "suggestedQuestions")
	assert.NotContains(t, body, "id")
}

func TestResearchController_InvalidTopic(t *testing.T) {
	svc := &fakeResearchService{}
	app := newApp(NewResearchController(svc).RegisterRoutes)

	for _, path := range []string{
		"/api/search?topic=ab",
		"/api/search",
		"/api/search?topic=" + strings.Repeat("x", 101),
		"/api/generate-insights?topic=ab",
	} {
		code, body := decode(t, app, "GET", path, "")
		assert.Equal(t, 400, code, path)
		assert.NotEmpty(t, body["error"], path)
		assert.NotEmpty(t, body["details"], path)
	}
	assert.Zero(t, svc.calls, "validation failures never reach the pipeline")
}

func TestResearchController_GenerateInsights(t *testing.T) {
	app := newApp(NewResearchController(&fakeResearchService{}).RegisterRoutes)

	code, body := decode(t, app, "GET", "/api/generate-insights?topic=AI%20ethics", "")

	assert.Equal(t, 200, code)
	assert.Equal(t, []interface{}{"fresh"}, body["insights"])
	groups := body["questionGroups"].([]interface{})
	require.Len(t, groups, 1)
	assert.Equal(t, "Societal Impact", groups[0].(map[string]interface{})["group"])
}

func TestSavedQueryController_CRUD(t *testing.T) {
	svc := service.NewSavedQueryService(
		implementation.NewKVSavedQueryRepository(memory.NewKeyValueStore()),
		metrics.NewMetrics(),
		logger.NewNopLogger(),
	)
	app := newApp(NewSavedQueryController(svc).RegisterRoutes)

	code, body := decode(t, app, "POST", "/api/saved-queries", `{"id":"q1","query":"AI ethics","insights":["a"]}`)
	require.Equal(t, 200, code)
	assert.Equal(t, true, body["success"])

	code, body = decode(t, app, "GET", "/api/saved-queries", "")
	require.Equal(t, 200, code)
	list := body["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "q1", list[0].(map[string]interface{})["id"])

	code, body = decode(t, app, "GET", "/api/saved-queries/q1", "")
	require.Equal(t, 200, code)
	assert.Equal(t, "AI ethics", body["data"].(map[string]interface{})["query"])

	code, _ = decode(t, app, "DELETE", "/api/saved-queries/q1", "")
	assert.Equal(t, 200, code)

	code, body = decode(t, app, "GET", "/api/saved-queries/q1", "")
	assert.Equal(t, 404, code)
	assert.Equal(t, false, body["success"])

	code, _ = decode(t, app, "POST", "/api/saved-queries", `{"query":"ab"}`)
	assert.Equal(t, 400, code)

	code, _ = decode(t, app, "POST", "/api/saved-queries", `{not json`)
	assert.Equal(t, 400, code)
}

func TestHistoryController(t *testing.T) {
	repo := implementation.NewKVHistoryRepository(memory.NewKeyValueStore())
	require.NoError(t, repo.Record(context.Background(), "AI ethics"))
	app := newApp(NewHistoryController(service.NewHistoryService(repo)).RegisterRoutes)

	code, body := decode(t, app, "GET", "/api/history", "")

	assert.Equal(t, 200, code)
	assert.Equal(t, []interface{}{"AI ethics"}, body["data"].(map[string]interface{})["topics"])
}
