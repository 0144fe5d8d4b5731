package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fothel/collectorvault/internal/models"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type Order struct {
	Product string  `json:"product"`
	Price   float64 `json:"price"`
	Status  string  `json:"status"`
}

type Profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Review struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e msgResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Msg != "" {
			return fmt.Errorf("%s", e.Msg)
		}
		return fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username, password, role string) (string, error) {
	var resp msgResponse
	err := c.do(ctx, http.MethodPost, "/register", map[string]string{
		"username": username,
		"password": password,
		"role":     role,
	}, &resp)
	return resp.Msg, err
}

func (c *Client) Login(ctx context.Context, username, password string) (token, role string, err error) {
	var resp struct {
		AccessToken string `json:"access_token"`
		Role        string `json:"role"`
	}
	err = c.do(ctx, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	return resp.AccessToken, resp.Role, err
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, &products)
	return products, err
}

type ProductFields struct {
	Name  *string  `json:"name,omitempty"`
	Type  *string  `json:"type,omitempty"`
	Price *float64 `json:"price,omitempty"`
	Stock *int     `json:"stock,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, name, typ string, price float64, stock int) (string, error) {
	var resp msgResponse
	err := c.do(ctx, http.MethodPost, "/products", map[string]any{
		"name":  name,
		"type":  typ,
		"price": price,
		"stock": stock,
	}, &resp)
	return resp.Msg, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, fields ProductFields) (string, error) {
	var resp msgResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), fields, &resp)
	return resp.Msg, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) (string, error) {
	var resp msgResponse
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, &resp)
	return resp.Msg, err
}

func (c *Client) Buy(ctx context.Context, id int) (string, error) {
	var resp msgResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/buy/%d", id), nil, &resp)
	return resp.Msg, err
}

func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := c.do(ctx, http.MethodGet, "/my-orders", nil, &orders)
	return orders, err
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Reviews(ctx context.Context, productID int) ([]Review, error) {
	var reviews []Review
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/reviews", productID), nil, &reviews)
	return reviews, err
}

func (c *Client) AddReview(ctx context.Context, productID int, comment string, rating int) (string, error) {
	var resp msgResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/reviews", productID), map[string]any{
		"comment": comment,
		"rating":  rating,
	}, &resp)
	return resp.Msg, err
}
