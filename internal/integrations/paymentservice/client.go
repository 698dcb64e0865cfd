package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжного шлюза (редирект-модель: создаём платёж,
// получаем URL, результат приходит асинхронным callback по orderId)
type Client struct {
	baseURL     string
	callbackURL string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL, callbackURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		callbackURL: callbackURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateDeposit инициирует депозитный платёж и возвращает URL для редиректа
func (c *Client) CreateDeposit(ctx context.Context, req *DepositRequest) (*DepositResponse, error) {
	if req.CallbackURL == "" {
		req.CallbackURL = c.callbackURL
	}
	if req.PaymentType == "" {
		req.PaymentType = PaymentTypeVNPay
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/payments", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		return nil, ErrPaymentRejected
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var deposit DepositResponse
	if err := json.NewDecoder(resp.Body).Decode(&deposit); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &deposit, nil
}

// CreateDepositWithGracefulDegradation инициирует платёж с graceful degradation
// При недоступности шлюза возвращает ErrServiceDegraded: созданное бронирование
// при этом не теряется, оплату можно инициировать повторно
func (c *Client) CreateDepositWithGracefulDegradation(ctx context.Context, req *DepositRequest) (*DepositResponse, error) {
	c.log.Info("Creating deposit for order_id=%d, amount=%.2f", req.OrderID, req.Amount)

	deposit, err := c.CreateDeposit(ctx, req)
	if err != nil {
		// Бизнес-отказ шлюза пробрасываем дальше
		if errors.Is(err, ErrPaymentRejected) {
			c.log.Warn("Deposit rejected by gateway for order_id=%d", req.OrderID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("PaymentService unavailable, applying graceful degradation for order_id=%d: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: order_id=%d, error=%v", ErrServiceDegraded, req.OrderID, err)
	}

	c.log.Info("Deposit created for order_id=%d", req.OrderID)
	return deposit, nil
}
