package advicegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Фиксированные строки-заглушки. Тексты унаследованы от первой версии системы.
const (
	// FallbackUnavailable показывается, когда генератор недоступен
	FallbackUnavailable = "AIアドバイザーが現在利用できません。直接メモをご記入ください。"

	// FallbackEmpty показывается, когда генератор не вернул текст
	FallbackEmpty = "申し訳ありません。アドバイスを生成できませんでした。"
)

// consultationPrompt промпт консультации: генератор получает текст обращения
// гардиана и возвращает структурированный совет для подготовки к собеседованию
const consultationPrompt = `あなたは小学校・中学校のベテラン教師です。保護者が個人面談の際に先生に伝えるべきポイントや、相談内容を整理する手助けをしてください。

保護者の相談内容: "%s"

以下の形式でアドバイスをしてください：
1. 相談内容の要約
2. 先生に具体的に聞くと良い質問の例（2-3個）
3. 面談をスムーズに進めるためのヒント

回答は優しく、励ますようなトーンで日本語で作成してください。`

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент генератора советов (Gemini generateContent API).
// Корректность бронирования не зависит от этого клиента: любой его отказ
// деградирует до фиксированной строки-заглушки.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента генератора советов.
// Пустой apiKey допустим — клиент тогда всегда отдает заглушку.
func NewClient(baseURL, model, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GenerateAdvice выполняет один запрос к генератору.
// Повторных попыток нет: единственная попытка, ошибки типизируются.
func (c *Client) GenerateAdvice(ctx context.Context, memo string) (string, error) {
	if memo == "" {
		return "", ErrEmptyMemo
	}
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(consultationPrompt, memo)}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidResponse, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.text(), nil
}

// GetAdviceWithFallback получает совет с graceful degradation: никогда не
// возвращает ошибку за границу клиента. Любой отказ (сеть, таймаут, квота,
// пустой ввод) логируется и заменяется строкой-заглушкой, поэтому путь
// бронирования этим вызовом заблокирован быть не может.
func (c *Client) GetAdviceWithFallback(ctx context.Context, memo string) string {
	text, err := c.GenerateAdvice(ctx, memo)
	if err != nil {
		c.log.Error("GetAdviceWithFallback: advice generation failed, using fallback: %v", err)
		return FallbackUnavailable
	}

	if text == "" {
		c.log.Warn("GetAdviceWithFallback: generator returned empty text, using fallback")
		return FallbackEmpty
	}

	c.log.Info("GetAdviceWithFallback: advice generated, %d chars", len(text))
	return text
}
