package wisdomhandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/domain/query"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/wisdomhandler"
)

// mockPatternRepository serves canned patterns, honoring the theme filter.
type mockPatternRepository struct {
	patterns []*archive.WisdomPattern
}

func (m *mockPatternRepository) FindByFilter(ctx context.Context, filter archive.PatternFilter, pagination *query.Pagination) ([]*archive.WisdomPattern, error) {
	result := make([]*archive.WisdomPattern, 0)
	for _, pattern := range m.patterns {
		if filter.ThemeCategory != nil && pattern.ThemeCategory != *filter.ThemeCategory {
			continue
		}
		result = append(result, pattern)
	}
	return result, nil
}

// Remaining interface methods are no-ops for these tests.
func (m *mockPatternRepository) Create(ctx context.Context, pattern *archive.WisdomPattern) error {
	return nil
}
func (m *mockPatternRepository) FindByTheme(ctx context.Context, themeCategory string) (*archive.WisdomPattern, error) {
	return nil, nil
}
func (m *mockPatternRepository) IncrementFrequency(ctx context.Context, id uint) error { return nil }
func (m *mockPatternRepository) FindHighValue(ctx context.Context, minFrequency int, minEffectiveness float64) ([]*archive.WisdomPattern, error) {
	return nil, nil
}
func (m *mockPatternRepository) Count(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockPatternRepository) TopThemes(ctx context.Context, limit int) ([]archive.ThemeFrequency, error) {
	return nil, nil
}

// mockInsightRepository serves canned insights and records approvals.
type mockInsightRepository struct {
	insights []*archive.CollectiveInsight
}

func (m *mockInsightRepository) FindByFilter(ctx context.Context, filter archive.InsightFilter, pagination *query.Pagination) ([]*archive.CollectiveInsight, error) {
	result := make([]*archive.CollectiveInsight, 0)
	for _, insight := range m.insights {
		if filter.ReviewStatus != nil && insight.ReviewStatus != *filter.ReviewStatus {
			continue
		}
		result = append(result, insight)
	}
	return result, nil
}

func (m *mockInsightRepository) FindByPublicID(ctx context.Context, publicID string) (*archive.CollectiveInsight, error) {
	for _, insight := range m.insights {
		if insight.PublicID == publicID {
			return insight, nil
		}
	}
	return nil, nil
}

func (m *mockInsightRepository) UpdateReviewStatus(ctx context.Context, publicID string, status archive.ReviewStatus) error {
	for _, insight := range m.insights {
		if insight.PublicID == publicID {
			insight.ReviewStatus = status
		}
	}
	return nil
}

func (m *mockInsightRepository) Create(ctx context.Context, insight *archive.CollectiveInsight) error {
	return nil
}
func (m *mockInsightRepository) TitleExistsContaining(ctx context.Context, fragment string) (bool, error) {
	return false, nil
}
func (m *mockInsightRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockRecordRepository struct{}

func (m *mockRecordRepository) Create(ctx context.Context, record *archive.ConversationRecord) error {
	return nil
}
func (m *mockRecordRepository) Count(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockRecordRepository) CountByConsentLevel(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}
func (m *mockRecordRepository) CountActiveSessionsSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}
func (m *mockRecordRepository) ListExpirationCandidates(ctx context.Context) ([]archive.ExpirationCandidate, error) {
	return nil, nil
}
func (m *mockRecordRepository) DeleteByPublicIDs(ctx context.Context, publicIDs []string) (int64, error) {
	return 0, nil
}

type mockConsentRepository struct{}

func (m *mockConsentRepository) Upsert(ctx context.Context, preference *consent.Preference) error {
	return nil
}
func (m *mockConsentRepository) FindBySessionID(ctx context.Context, sessionID string) (*consent.Preference, error) {
	return nil, nil
}

func setupWisdomTestRouter(patterns *mockPatternRepository, insights *mockInsightRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	archiveService := archive.NewService(
		&mockRecordRepository{},
		patterns,
		insights,
		consent.NewService(&mockConsentRepository{}),
		zerolog.Nop(),
	)
	handler := wisdomhandler.NewWisdomHandler(archiveService)

	wisdom := r.Group("/v1/wisdom")
	{
		wisdom.GET("/patterns", handler.ListPatterns)
		wisdom.GET("/insights", handler.ListInsights)
		wisdom.POST("/insights/:insight_id/approve", handler.ApproveInsight)
	}

	return r
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListPatterns_FiltersByTheme(t *testing.T) {
	patterns := &mockPatternRepository{patterns: []*archive.WisdomPattern{
		{PublicID: "pat_a", ThemeCategory: "healing", Frequency: 5},
		{PublicID: "pat_b", ThemeCategory: "creativity", Frequency: 3},
	}}
	router := setupWisdomTestRouter(patterns, &mockInsightRepository{})

	w := get(router, "/v1/wisdom/patterns?theme=healing")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatalf("Expected data array, got %T", response["data"])
	}
	if len(data) != 1 {
		t.Fatalf("Expected 1 pattern, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["theme_category"] != "healing" {
		t.Errorf("Expected theme 'healing', got %v", first["theme_category"])
	}
}

func TestListPatterns_EmptyArchiveReturnsEmptyList(t *testing.T) {
	router := setupWisdomTestRouter(&mockPatternRepository{}, &mockInsightRepository{})

	w := get(router, "/v1/wisdom/patterns")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatalf("Expected data array even when empty, got %T", response["data"])
	}
	if len(data) != 0 {
		t.Errorf("Expected empty list, got %d entries", len(data))
	}
}

func TestListPatterns_InvalidLimitReturns400(t *testing.T) {
	router := setupWisdomTestRouter(&mockPatternRepository{}, &mockInsightRepository{})

	w := get(router, "/v1/wisdom/patterns?limit=abc")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestListInsights_FiltersByStatus(t *testing.T) {
	insights := &mockInsightRepository{insights: []*archive.CollectiveInsight{
		{PublicID: "ins_a", Title: "Collective Wisdom: Healing", ReviewStatus: archive.ReviewStatusPending},
		{PublicID: "ins_b", Title: "Collective Wisdom: Creativity", ReviewStatus: archive.ReviewStatusApproved},
	}}
	router := setupWisdomTestRouter(&mockPatternRepository{}, insights)

	w := get(router, "/v1/wisdom/insights?status=approved")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatalf("Expected data array, got %T", response["data"])
	}
	if len(data) != 1 {
		t.Fatalf("Expected 1 insight, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["ethical_review_status"] != "approved" {
		t.Errorf("Expected approved insight, got %v", first["ethical_review_status"])
	}
}

func TestListInsights_UnknownStatusReturns400(t *testing.T) {
	router := setupWisdomTestRouter(&mockPatternRepository{}, &mockInsightRepository{})

	w := get(router, "/v1/wisdom/insights?status=rejected")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestApproveInsight_MarksApproved(t *testing.T) {
	insights := &mockInsightRepository{insights: []*archive.CollectiveInsight{
		{PublicID: "ins_a", Title: "Collective Wisdom: Healing", ReviewStatus: archive.ReviewStatusPending},
	}}
	router := setupWisdomTestRouter(&mockPatternRepository{}, insights)

	req, _ := http.NewRequest("POST", "/v1/wisdom/insights/ins_a/approve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["ethical_review_status"] != "approved" {
		t.Errorf("Expected approved status in response, got %v", response["ethical_review_status"])
	}
	if insights.insights[0].ReviewStatus != archive.ReviewStatusApproved {
		t.Errorf("Expected stored insight to be approved, got %q", insights.insights[0].ReviewStatus)
	}
}

func TestApproveInsight_MissingReturns404(t *testing.T) {
	router := setupWisdomTestRouter(&mockPatternRepository{}, &mockInsightRepository{})

	req, _ := http.NewRequest("POST", "/v1/wisdom/insights/ins_missing/approve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}
