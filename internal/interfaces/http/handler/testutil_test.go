package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/devlink/backend/internal/application/identity"
	profileapp "github.com/devlink/backend/internal/application/profile"
	socialapp "github.com/devlink/backend/internal/application/social"
	"github.com/devlink/backend/internal/domain/identity"
	"github.com/devlink/backend/internal/domain/profile"
	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/domain/social"
	"github.com/devlink/backend/internal/infrastructure/auth"
	"github.com/devlink/backend/internal/infrastructure/config"
	"github.com/devlink/backend/internal/interfaces/http/middleware"
	"github.com/devlink/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func (r *memUserRepo) Create(_ context.Context, user *identity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return shared.ErrAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*identity.User, error) {
	var result []*identity.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

type memProfileRepo struct {
	profiles map[uuid.UUID]*profile.Profile
}

func (r *memProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	if _, ok := r.profiles[p.OwnerID]; ok {
		return shared.ErrAlreadyExists
	}
	r.profiles[p.OwnerID] = p
	return nil
}

func (r *memProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.profiles[p.OwnerID] = p
	return nil
}

func (r *memProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memProfileRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.profiles[ownerID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *memProfileRepo) FindAll(_ context.Context) ([]*profile.Profile, error) {
	result := make([]*profile.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		result = append(result, p)
	}
	return result, nil
}

func (r *memProfileRepo) DeleteByOwner(_ context.Context, ownerID uuid.UUID) error {
	delete(r.profiles, ownerID)
	return nil
}

type memPostRepo struct {
	posts map[uuid.UUID]*social.Post
}

func (r *memPostRepo) Create(_ context.Context, post *social.Post) error {
	r.posts[post.ID] = post
	return nil
}

func (r *memPostRepo) Save(_ context.Context, post *social.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return shared.ErrNotFound
	}
	r.posts[post.ID] = post
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.posts[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) FindByID(_ context.Context, id uuid.UUID) (*social.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return post, nil
}

func (r *memPostRepo) FindAll(_ context.Context) ([]*social.Post, error) {
	result := make([]*social.Post, 0, len(r.posts))
	for _, post := range r.posts {
		result = append(result, post)
	}
	return result, nil
}

type staticAvatars struct{}

func (staticAvatars) URLFor(string) string { return "https://gravatar.com/avatar/test" }

// testAPI wires the full route stack against in-memory repositories
type testAPI struct {
	engine *gin.Engine
	tokens *auth.TokenService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	middleware.SetupValidator()

	userRepo := &memUserRepo{users: make(map[uuid.UUID]*identity.User)}
	profileRepo := &memProfileRepo{profiles: make(map[uuid.UUID]*profile.Profile)}
	postRepo := &memPostRepo{posts: make(map[uuid.UUID]*social.Post)}

	tokens := auth.NewTokenService(config.JWTConfig{
		Secret:        "test-secret-key-at-least-32-chars",
		TokenLifetime: time.Hour,
		Issuer:        "test",
	})

	log := zap.NewNop()
	authService := identityapp.NewAuthService(userRepo, tokens, staticAvatars{}, log)
	profileService := profileapp.NewProfileService(profileRepo, userRepo, log)
	postService := socialapp.NewPostService(postRepo, userRepo, log)

	authGuard := middleware.RequireAuth(tokens, log)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewAuthHandler(authService, authGuard)).
		Register(NewProfileHandler(profileService, authGuard)).
		Register(NewPostHandler(postService, authGuard))
	r.Setup()

	return &testAPI{engine: engine, tokens: tokens}
}

func (api *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns its token and id
func (api *testAPI) register(t *testing.T, name string) (string, uuid.UUID) {
	t.Helper()

	w := api.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    name + "@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				ID uuid.UUID `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Token, resp.Data.User.ID
}
