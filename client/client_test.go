package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() models.ArticleInput {
	return models.ArticleInput{
		Title:      "My Post",
		Slug:       "my-post",
		CoverImage: "https://example.com/cover.jpg",
		Author:     "Jane",
		Blocks:     models.Blocks{{ID: "b1", Type: models.BlockHeading, Data: models.TextData("Intro")}},
	}
}

func TestCreateArticle(t *testing.T) {
	var gotAuth string
	var gotBody models.ArticleInput

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/create-article", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Article created",
			"data": models.StoredArticle{
				ID:        3,
				Title:     gotBody.Title,
				Slug:      gotBody.Slug,
				Author:    gotBody.Author,
				CreatedAt: "2025-03-14 09:26:53",
				UpdatedAt: "2025-03-14 09:26:53",
				Blocks:    gotBody.Blocks,
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	stored, err := c.CreateArticle(context.Background(), "secret-token", testInput())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, uint(3), stored.ID)
	assert.Equal(t, "my-post", stored.Slug)
	require.Len(t, stored.Blocks, 1)
	assert.Equal(t, "Intro", stored.Blocks[0].Data.Text)
}

func TestCreateArticleSlugConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": `slug already in use: "my-post"`})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateArticle(context.Background(), "token", testInput())

	assert.ErrorIs(t, err, models.ErrSlugConflict)
	assert.Contains(t, err.Error(), "my-post")
}

func TestUpdateArticleNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/update-article/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "record not found: article 42"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.UpdateArticle(context.Background(), "token", 42, testInput())

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NotErrorIs(t, err, models.ErrSlugConflict)
}

func TestCreateArticleValidationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Title is a required field"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateArticle(context.Background(), "token", models.ArticleInput{})

	assert.ErrorIs(t, err, models.ErrInvalid)
}

func TestServerErrorIsGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateArticle(context.Background(), "token", testInput())

	assert.ErrorIs(t, err, models.ErrServer)
	assert.NotErrorIs(t, err, models.ErrSlugConflict)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestGetAllArticles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get-all-articles", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Articles fetched",
			"data": []models.StoredArticle{
				{ID: 2, Title: "Newer", Slug: "newer"},
				{ID: 1, Title: "Older", Slug: "older"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	articles, err := c.GetAllArticles(context.Background())
	require.NoError(t, err)

	require.Len(t, articles, 2)
	assert.Equal(t, "newer", articles[0].Slug)
}

func TestGetArticleDataDecodesDoubleEncodedBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get-article-data/my-post", r.URL.Path)
		w.Write([]byte(`{
			"message": "Article fetched",
			"data": {
				"id": 1,
				"title": "My Post",
				"slug": "my-post",
				"blocks": "[{\"id\":\"b1\",\"type\":\"paragraph\",\"data\":{\"text\":\"hi\"}}]"
			}
		}`))
	}))
	defer server.Close()

	c := New(server.URL)
	stored, err := c.GetArticleData(context.Background(), "my-post")
	require.NoError(t, err)

	require.Len(t, stored.Blocks, 1)
	assert.Equal(t, "hi", stored.Blocks[0].Data.Text)
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Login successful",
			"data": models.AuthResponse{
				Token: "issued-token",
				User:  models.StoredUser{ID: 1, Email: "admin@example.com"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)

	resp, err := c.Login(context.Background(), "admin@example.com", "correct")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)

	_, err = c.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestUserCRUD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/create-user":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "User created",
				"data":    models.StoredUser{ID: 2, Email: "new@example.com"},
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/delete-user/2":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "User deleted",
				"data":    models.StoredUser{ID: 2, Email: "new@example.com"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL)

	user, err := c.CreateUser(context.Background(), "token", models.UserInput{Email: "new@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), user.ID)

	deleted, err := c.DeleteUser(context.Background(), "token", 2)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", deleted.Email)
}
