package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
)

// HTTPGatewayClient реализует domain.GatewayClient поверх удалённого API QuickFlip.
// Все запросы несут статический заголовок authkey
type HTTPGatewayClient struct {
	baseURL    string
	authKey    string
	httpClient *http.Client
}

// NewGatewayClient создает новый клиент шлюза
func NewGatewayClient(baseURL, authKey string, timeout time.Duration) *HTTPGatewayClient {
	return &HTTPGatewayClient{
		baseURL: baseURL,
		authKey: authKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Login аутентифицирует пользователя на удалённом API
func (c *HTTPGatewayClient) Login(ctx context.Context, username, password string) (*domain.LoginReply, error) {
	body, err := json.Marshal(map[string]string{
		"user_name": username,
		"pwd":       password,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to marshal login request: %w", err)
	}

	url := c.baseURL + "/auth/user/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authkey", c.authKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to execute login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusError(resp.StatusCode)
	}

	var reply domain.LoginReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("gateway client: failed to decode login response: %w", err)
	}

	return &reply, nil
}

// SubmitIntake отправляет бизнес-анкету формой multipart
func (c *HTTPGatewayClient) SubmitIntake(ctx context.Context, fields map[string]string) (*domain.Result, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("gateway client: failed to write intake field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gateway client: failed to finalize intake form: %w", err)
	}

	return c.postForm(ctx, c.baseURL+"/business/intake", &buf, writer.FormDataContentType())
}

// RegisterSeller отправляет заявку продавца формой multipart.
// Категории товаров и варианты доставки передаются JSON-массивами
// внутри формы, как того ожидает API
func (c *HTTPGatewayClient) RegisterSeller(ctx context.Context, form domain.SellerForm) (*domain.Result, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range form.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("gateway client: failed to write seller field %q: %w", key, err)
		}
	}

	categories, err := json.Marshal(form.ProductCategories)
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to marshal product categories: %w", err)
	}
	shipping, err := json.Marshal(form.ShippingOptions)
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to marshal shipping options: %w", err)
	}

	if err := writer.WriteField("productCategories", string(categories)); err != nil {
		return nil, fmt.Errorf("gateway client: failed to write product categories: %w", err)
	}
	if err := writer.WriteField("shippingOptions", string(shipping)); err != nil {
		return nil, fmt.Errorf("gateway client: failed to write shipping options: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gateway client: failed to finalize seller form: %w", err)
	}

	return c.postForm(ctx, c.baseURL+"/seller/register", &buf, writer.FormDataContentType())
}

// postForm отправляет multipart-форму и разбирает ответ.
// Успех определяется полем success в теле ответа
func (c *HTTPGatewayClient) postForm(ctx context.Context, url string, body *bytes.Buffer, contentType string) (*domain.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("authkey", c.authKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var reply struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("gateway client: failed to decode response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || !reply.Success {
		return &domain.Result{Success: false, Message: reply.Message}, nil
	}

	return &domain.Result{Success: true, Message: reply.Message}, nil
}
