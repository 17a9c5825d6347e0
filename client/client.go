// Package client is a typed HTTP client for the blog API. It implements the
// editor's Publisher interface and maps response status codes back to the
// shared sentinel errors, so callers can tell a slug conflict from a missing
// article from a server failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"blog-cms/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// NewWithHTTPClient lets callers supply their own http.Client, e.g. one with
// a timeout.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	c.httpClient = httpClient
	return c
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := models.LoginRequest{Email: email, Password: password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifyToken(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/verify-token", token, nil, nil)
}

func (c *Client) CreateArticle(ctx context.Context, token string, input models.ArticleInput) (*models.StoredArticle, error) {
	var stored models.StoredArticle
	if err := c.do(ctx, http.MethodPost, "/create-article", token, input, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *Client) UpdateArticle(ctx context.Context, token string, id uint, input models.ArticleInput) (*models.StoredArticle, error) {
	var stored models.StoredArticle
	path := fmt.Sprintf("/update-article/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, input, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *Client) DeleteArticle(ctx context.Context, token string, id uint) (*models.StoredArticle, error) {
	var stored models.StoredArticle
	path := fmt.Sprintf("/delete-article/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *Client) GetAllArticles(ctx context.Context) ([]models.StoredArticle, error) {
	var articles []models.StoredArticle
	if err := c.do(ctx, http.MethodGet, "/get-all-articles", "", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) GetArticleData(ctx context.Context, slug string) (*models.StoredArticle, error) {
	var stored models.StoredArticle
	if err := c.do(ctx, http.MethodGet, "/get-article-data/"+slug, "", nil, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *Client) GetAllUsers(ctx context.Context, token string) ([]models.StoredUser, error) {
	var users []models.StoredUser
	if err := c.do(ctx, http.MethodGet, "/get-all-users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, input models.UserInput) (*models.StoredUser, error) {
	var user models.StoredUser
	if err := c.do(ctx, http.MethodPost, "/create-user", token, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id uint, input models.UserInput) (*models.StoredUser, error) {
	var user models.StoredUser
	path := fmt.Sprintf("/update-user/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id uint) (*models.StoredUser, error) {
	var user models.StoredUser
	path := fmt.Sprintf("/delete-user/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrServer, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrServer, err.Error())
	}

	var env envelope
	if len(raw) > 0 {
		// Non-JSON error bodies still map to a status-derived error below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, env.Error)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}

func statusError(statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", models.ErrInvalid, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", models.ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", models.ErrSlugConflict, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", models.ErrNotFound, message)
	default:
		return fmt.Errorf("%w: %s", models.ErrServer, message)
	}
}
