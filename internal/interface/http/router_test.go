package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/application"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/middleware"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/analytics"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/helpers"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

type testEnv struct {
	engine  *gin.Engine
	data    *memData
	users   *fakeUserRepo
	movies  *fakeMovieRepo
	reviews *fakeReviewRepo
	jwt     *helpers.JWTManager
}

// newTestEnv wires the full route surface against in-memory stores, the
// same shape the router modules register in production.
func newTestEnv(t *testing.T, tracker *analytics.Tracker) *testEnv {
	t.Helper()

	data := &memData{}
	users := &fakeUserRepo{data: data}
	movies := &fakeMovieRepo{data: data}
	reviews := &fakeReviewRepo{data: data}

	jwtMgr := helpers.NewJWTManager("test-secret", time.Hour)

	authH := NewAuthHandler(application.NewAuthService(users, jwtMgr, nil), nil)
	movieH := NewMovieHandler(application.NewMovieService(movies, nil), nil)
	reviewH := NewReviewHandler(application.NewReviewService(reviews, movies, tracker, nil), nil)

	r := gin.New()
	r.POST("/signup", authH.Signup)
	r.POST("/signin", authH.Signin)
	r.GET("/movies", movieH.List)
	r.GET("/movies/:id", movieH.Get)
	r.GET("/reviews", reviewH.List)
	auth := middleware.JWTAuth(jwtMgr)
	r.POST("/reviews", auth, reviewH.Create)
	r.DELETE("/reviews/:id", auth, reviewH.Delete)

	return &testEnv{engine: r, data: data, users: users, movies: movies, reviews: reviews, jwt: jwtMgr}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
