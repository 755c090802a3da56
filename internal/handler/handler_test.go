package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sightstory/internal/mocks"
	"sightstory/internal/models"
	"sightstory/internal/service"
	"sightstory/internal/story"

	rateli "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const goodToken = "good-token"

type fixture struct {
	router    *gin.Engine
	auth      *mocks.AuthService
	stories   *mocks.StoryService
	analytics *mocks.AnalyticsService
	userID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &fixture{
		router:    gin.New(),
		auth:      new(mocks.AuthService),
		stories:   new(mocks.StoryService),
		analytics: new(mocks.AnalyticsService),
		userID:    uuid.New(),
	}
	NewHandler(f.auth, f.stories, f.analytics, nil).RegisterRoutes(f.router, nil, nil)

	f.auth.On("VerifyAccessToken", mock.Anything, goodToken).Return(&models.Claims{
		UserID:           f.userID,
		Roles:            []string{models.RoleUser},
		RegisteredClaims: jwt.RegisteredClaims{ID: "access-1"},
	}, nil).Maybe()

	t.Cleanup(func() {
		f.auth.AssertExpectations(t)
		f.stories.AssertExpectations(t)
		f.analytics.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+goodToken)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/me", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, models.ErrCodeTokenInvalid, decodeError(t, w).Code)

	f.auth.On("VerifyAccessToken", mock.Anything, "stale").Return(nil, models.ErrTokenExpired).Once()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, models.ErrCodeTokenExpired, decodeError(t, w).Code)
}

func TestGetMe(t *testing.T) {
	f := newFixture(t)
	f.auth.On("GetUser", mock.Anything, f.userID).Return(&models.User{
		ID: f.userID, Username: "teacher", DisplayName: "Ms. Lee", Email: "lee@example.com",
	}, nil).Once()

	w := f.do(http.MethodGet, "/api/me", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var resp meResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ms. Lee", resp.DisplayName)
	assert.Equal(t, f.userID.String(), resp.ID)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auth/register", gin.H{"username": "teacher", "email": "not-an-email"}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, models.ErrCodeValidation, resp.Code)
	assert.Contains(t, resp.Message, "Email failed on 'email'")
	assert.Contains(t, resp.Message, "Password failed on 'required'")

	f.auth.On("Register", mock.Anything, "teacher", "lee@example.com", "password1").
		Return(nil, models.ErrUserAlreadyExists).Once()
	w = f.do(http.MethodPost, "/auth/register", registerRequest{Username: "teacher", Email: "lee@example.com", Password: "password1"}, false)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, models.ErrCodeDuplicateUser, decodeError(t, w).Code)

	f.auth.On("Login", mock.Anything, "teacher", "password1").
		Return(&models.TokenDetails{AccessToken: "a", RefreshToken: "r"}, nil).Once()
	w = f.do(http.MethodPost, "/auth/login", loginRequest{Username: "teacher", Password: "password1"}, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"a"`)
	assert.NotContains(t, w.Body.String(), "access-1")
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.auth.On("Logout", mock.Anything, f.userID, "access-1", "").Return(nil).Once()
	w := f.do(http.MethodPost, "/auth/logout", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	f.auth.On("Logout", mock.Anything, f.userID, "access-1", "refresh-jwt").Return(nil).Once()
	w = f.do(http.MethodPost, "/auth/logout", logoutRequest{RefreshToken: "refresh-jwt"}, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestComposeStory(t *testing.T) {
	f := newFixture(t)
	composed := story.Story{
		Title:            "A Day at the Park",
		Sentences:        []string{"Mia went to the park."},
		UsedWords:        []string{"park"},
		TotalTargetWords: 1,
		CoveragePercent:  100,
		ScenesUsed:       []string{"park-walk-dog"},
	}
	f.stories.On("Compose", mock.Anything, f.userID, []string{"dog", "the", "park"}, "Mia").Return(composed).Once()

	w := f.do(http.MethodPost, "/api/stories/compose", composeRequest{Words: []string{"dog"}, Text: "the, park", Name: " Mia "}, true)
	require.Equal(t, http.StatusOK, w.Code)
	var got story.Story
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, composed, got)
	assert.Contains(t, w.Body.String(), `"coverage_percent":100`)
}

func TestComposeStory_Limits(t *testing.T) {
	f := newFixture(t)

	tooMany := make([]string, maxTargetWords+1)
	for i := range tooMany {
		tooMany[i] = "w"
	}
	w := f.do(http.MethodPost, "/api/stories/compose", composeRequest{Words: tooMany}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrCodeValidation, decodeError(t, w).Code)

	w = f.do(http.MethodPost, "/api/stories/compose", composeRequest{Words: []string{strings.Repeat("a", maxTargetWordLen+1)}}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/stories/compose", composeRequest{Name: strings.Repeat("n", maxProtagonistName+1)}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveAndGetStory(t *testing.T) {
	f := newFixture(t)
	storyID := uuid.New()
	saved := &models.SavedStory{ID: storyID, UserID: f.userID, Title: "A Fun Day", Sentences: []string{"Hi."}}

	f.stories.On("Save", mock.Anything, f.userID, service.SaveStoryInput{
		Title:     "A Fun Day",
		Sentences: []string{"Hi."},
	}).Return(saved, nil).Once()
	w := f.do(http.MethodPost, "/api/stories", saveStoryRequest{Title: "A Fun Day", Sentences: []string{"Hi."}}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), storyID.String())

	f.stories.On("Get", mock.Anything, f.userID, storyID).Return(saved, nil).Once()
	w = f.do(http.MethodGet, "/api/stories/"+storyID.String(), nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	missing := uuid.New()
	f.stories.On("Get", mock.Anything, f.userID, missing).Return(nil, models.ErrStoryNotFound).Once()
	w = f.do(http.MethodGet, "/api/stories/"+missing.String(), nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrCodeStoryNotFound, decodeError(t, w).Code)

	w = f.do(http.MethodGet, "/api/stories/not-a-uuid", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAndDeleteStories(t *testing.T) {
	f := newFixture(t)
	items := []models.StorySummary{{ID: uuid.New(), Title: "A Fun Day", CreatedAt: time.Now().UTC()}}
	f.stories.On("List", mock.Anything, f.userID, "abc", 5).Return(items, "next-cursor", nil).Once()

	w := f.do(http.MethodGet, "/api/stories?limit=5&cursor=abc", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var page models.PaginatedResponse[models.StorySummary]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Data, 1)
	assert.Equal(t, "next-cursor", page.NextCursor)

	w = f.do(http.MethodGet, "/api/stories?limit=zero", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.stories.On("Delete", mock.Anything, f.userID, items[0].ID).Return(nil).Once()
	w = f.do(http.MethodDelete, "/api/stories/"+items[0].ID.String(), nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestShareAndReadSharedStory(t *testing.T) {
	f := newFixture(t)
	storyID := uuid.New()
	in := service.ShareInput{RecipientEmail: "grandma@example.com", Message: "Look!"}

	f.stories.On("Share", mock.Anything, f.userID, storyID, in).Return("https://stories.example/shared/tok", nil).Once()
	w := f.do(http.MethodPost, "/api/stories/"+storyID.String()+"/share", shareStoryRequest{RecipientEmail: in.RecipientEmail, Message: in.Message}, true)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "https://stories.example/shared/tok")

	f.stories.On("Share", mock.Anything, f.userID, storyID, in).Return("", models.ErrShareRateLimited).Once()
	w = f.do(http.MethodPost, "/api/stories/"+storyID.String()+"/share", shareStoryRequest{RecipientEmail: in.RecipientEmail, Message: in.Message}, true)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, models.ErrCodeRateLimited, decodeError(t, w).Code)

	f.stories.On("GetShared", mock.Anything, "tok").Return(&models.SharedStoryView{Title: "A Fun Day"}, nil).Once()
	w = f.do(http.MethodGet, "/shared/tok", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A Fun Day")
}

func TestListScenes(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/scenes?phase=1", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []sceneResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, len(story.Default().InPhase(story.PhaseWakeUp)))
	assert.Equal(t, "wake-up", resp.Data[0].PhaseName)

	w = f.do(http.MethodGet, "/api/scenes", nil, true)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, len(story.Default().Scenes()))

	w = f.do(http.MethodGet, "/api/scenes?phase=11", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsageSummary(t *testing.T) {
	f := newFixture(t)
	f.analytics.On("Summary", mock.Anything, f.userID).Return(&models.UsageSummary{
		EventCounts: map[models.UsageEventType]int64{models.EventStoryComposed: 2},
	}, nil).Once()

	w := f.do(http.MethodGet, "/api/analytics/summary", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"story_composed":2`)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := NewRateLimitMiddleware(rateli.InMemoryStore(&rateli.InMemoryOptions{Rate: time.Minute, Limit: 1}))
	router.GET("/limited", limiter, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, models.ErrCodeRateLimited, decodeError(t, w).Code)
}
