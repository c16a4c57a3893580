package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"automark/internal/core/domain"
	"automark/internal/core/port"
	"automark/internal/core/port/mocks"
	"automark/internal/metrics"
)

var testSecret = []byte("test-secret")

type testServer struct {
	svc     *mocks.MockCampaignUseCase
	metrics *metrics.Metrics
	handler http.Handler
	userID  uuid.UUID
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	svc := mocks.NewMockCampaignUseCase(t)
	m := metrics.New()
	h := NewHandler(svc, Options{
		AllowedOrigins: []string{"http://localhost:5173"},
		JWTSecret:      string(testSecret),
		MetricsPath:    "/metrics",
	}, m, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.New()
	token, err := SignToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return &testServer{svc: svc, metrics: m, handler: h.Router(), userID: userID, token: token}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// expectOwned makes the ownership check pass for id.
func (s *testServer) expectOwned(id uuid.UUID) {
	s.svc.EXPECT().GetCampaign(mock.Anything, s.userID, id).
		Return(&domain.Campaign{ID: id, UserID: s.userID}, nil).Once()
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "automark_api_requests_total")
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.APIRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)

	expired, err := SignToken(testSecret, s.userID, -time.Minute)
	require.NoError(t, err)
	foreign, err := SignToken([]byte("other"), s.userID, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer abc"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "foreign signature", header: "Bearer " + foreign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			s.handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	s := newTestServer(t)
	s.svc.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(req port.CreateCampaignReq) bool {
		return req.UserID == s.userID && req.Name == "Spring Sale" &&
			req.Budget.Equal(decimal.RequireFromString("1000.50")) && len(req.Channels) == 2
	})).Return(&domain.Campaign{ID: uuid.New(), Name: "Spring Sale", Status: domain.StatusDraft}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns", `{
		"name": "Spring Sale",
		"business_goal": "Increase sales",
		"target_audience": "Shoppers",
		"budget": "1000.50",
		"channels": ["Google Ads", "Email Marketing"]
	}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"draft"`)
}

func TestCreateCampaignErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/campaigns", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.svc.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"budget": "Must be positive"}}).Once()
	rec = s.do(http.MethodPost, "/api/v1/campaigns", `{"name":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"validation failed","fields":{"budget":"Must be positive"}}`, rec.Body.String())
}

func TestListCampaigns(t *testing.T) {
	s := newTestServer(t)
	s.svc.EXPECT().ListCampaigns(mock.Anything, s.userID).Return(nil, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetCampaign(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/campaigns/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	id := uuid.New()
	s.svc.EXPECT().GetCampaign(mock.Anything, s.userID, id).Return(nil, domain.ErrNotFound).Once()
	rec = s.do(http.MethodGet, "/api/v1/campaigns/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCampaign(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.svc.EXPECT().UpdateCampaign(mock.Anything, s.userID, id, mock.MatchedBy(func(u domain.CampaignUpdate) bool {
		return u.Name != nil && *u.Name == "Summer" && u.Budget == nil &&
			len(u.Channels) == 1 && u.Channels[0] == domain.ChannelLinkedInAds
	})).Return(&domain.Campaign{ID: id, Name: "Summer"}, nil).Once()

	rec := s.do(http.MethodPatch, "/api/v1/campaigns/"+id.String(), `{"name":"Summer","channels":["linkedin"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPatch, "/api/v1/campaigns/"+id.String(), `{"budget":"-5"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPatch, "/api/v1/campaigns/"+id.String(), `{"channels":["TikTok"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPatch, "/api/v1/campaigns/"+id.String(), `{"channels":["Google Ads","google"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"validation failed","fields":{"channels":"duplicate channel \"Google Ads\""}}`, rec.Body.String())

	s.svc.EXPECT().UpdateCampaign(mock.Anything, s.userID, id, mock.Anything).Return(nil, domain.ErrInvalidTransition).Once()
	rec = s.do(http.MethodPatch, "/api/v1/campaigns/"+id.String(), `{"name":"x"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestExecuteCampaign(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.expectOwned(id)
	s.svc.EXPECT().ExecuteCampaign(mock.Anything, id).Return([]domain.ChannelExecutionResult{
		{Channel: domain.ChannelGoogleAds, Status: domain.ResultFailed, Error: "Google Ads create campaign: status=401: unauthorized"},
		{Channel: domain.ChannelEmail, Status: domain.ResultSuccess, Result: &domain.PlatformResult{Details: map[string]any{"recipients": 0}}},
	}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/execute", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success   bool                            `json:"success"`
		Activated int                             `json:"activated"`
		Result    []domain.ChannelExecutionResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Activated)
	require.Len(t, resp.Result, 2)
	assert.Equal(t, domain.ResultFailed, resp.Result[0].Status)
	assert.Contains(t, resp.Result[0].Error, "401")
}

func TestExecuteCampaignNoChannelSucceeded(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.expectOwned(id)
	s.svc.EXPECT().ExecuteCampaign(mock.Anything, id).Return([]domain.ChannelExecutionResult{
		{Channel: domain.ChannelMetaAds, Status: domain.ResultFailed, Error: "down"},
	}, domain.ErrNoChannelSucceeded).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/execute", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"success":false,"activated":0,"result":[{"channel":"Meta Ads","status":"failed","error":"down"}]}`, rec.Body.String())
}

func TestExecuteCampaignConflict(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.expectOwned(id)
	s.svc.EXPECT().ExecuteCampaign(mock.Anything, id).Return(nil, domain.ErrExecutionInProgress).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/execute", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestExecuteCampaignNotOwned(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.svc.EXPECT().GetCampaign(mock.Anything, s.userID, id).Return(nil, domain.ErrNotFound).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/execute", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPauseCampaign(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.expectOwned(id)
	s.svc.EXPECT().PauseCampaign(mock.Anything, id).Return([]domain.ChannelExecutionResult{
		{Channel: domain.ChannelEmail, Status: domain.ResultPaused},
	}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/pause", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"result":[{"channel":"Email Marketing","status":"paused"}]}`, rec.Body.String())
}

func TestSyncPerformance(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.expectOwned(id)
	s.svc.EXPECT().SyncPerformanceData(mock.Anything, id).Return(nil, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/sync", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"records":[]}`, rec.Body.String())
}

func TestSyncPerformanceStoreFailure(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.expectOwned(id)
	s.svc.EXPECT().SyncPerformanceData(mock.Anything, id).
		Return(nil, &domain.PersistenceError{Op: "insert performance", Err: assert.AnError}).Once()

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/sync", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestReadEndpoints(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()

	s.expectOwned(id)
	s.svc.EXPECT().ListPerformance(mock.Anything, id).Return(nil, nil).Once()
	rec := s.do(http.MethodGet, "/api/v1/campaigns/"+id.String()+"/performance", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	s.expectOwned(id)
	s.svc.EXPECT().ListExecutionLogs(mock.Anything, id).Return([]domain.ExecutionLogEntry{
		{CampaignID: id, Action: "Campaign Execution - Google Ads", Status: domain.LogSuccess},
	}, nil).Once()
	rec = s.do(http.MethodGet, "/api/v1/campaigns/"+id.String()+"/logs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Campaign Execution - Google Ads")

	s.expectOwned(id)
	s.svc.EXPECT().GetAnalytics(mock.Anything, id).Return(&port.Analytics{CampaignID: id, Insight: "steady"}, nil).Once()
	rec = s.do(http.MethodGet, "/api/v1/campaigns/"+id.String()+"/analytics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insight":"steady"`)
}

func TestGenerateAdCopy(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()

	s.expectOwned(id)
	s.svc.EXPECT().GenerateAdCopy(mock.Anything, id, "Meta Ads").Return([]domain.GeneratedContent{
		{CampaignID: id, ContentType: domain.ContentAdCopy, Content: "Buy now", Platform: "Meta Ads"},
	}, nil).Once()
	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/content/ad-copy", `{"platform":"Meta Ads"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Buy now")

	s.expectOwned(id)
	rec = s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/content/ad-copy", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateStrategy(t *testing.T) {
	s := newTestServer(t)
	s.svc.EXPECT().GenerateStrategy(mock.Anything, mock.MatchedBy(func(req port.StrategyReq) bool {
		return req.BusinessGoal == "Grow" && req.Budget.Equal(decimal.NewFromInt(500))
	})).Return(domain.Strategy{Summary: "plan", Channels: []domain.Channel{domain.ChannelMetaAds}}).Once()

	rec := s.do(http.MethodPost, "/api/v1/strategy", `{"business_goal":"Grow","target_audience":"All","budget":500}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"strategy":"plan"`)

	rec = s.do(http.MethodPost, "/api/v1/strategy", `{"business_goal":"Grow","target_audience":"All","budget":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: domain.ErrNotFound, want: http.StatusNotFound},
		{err: domain.ErrExecutionInProgress, want: http.StatusConflict},
		{err: domain.ErrInvalidTransition, want: http.StatusConflict},
		{err: domain.ErrNoChannelSucceeded, want: http.StatusBadGateway},
		{err: &domain.ValidationError{}, want: http.StatusUnprocessableEntity},
		{err: &domain.PersistenceError{Op: "x", Err: assert.AnError}, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
