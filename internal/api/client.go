// Package api is the typed client for the pizzeria REST API. Every request
// carries the session's bearer credential; a 401/403 response invalidates the
// session so the owner of the login flow can force re-authentication.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/apires/pizzaria-backoffice/internal/config"
	"github.com/apires/pizzaria-backoffice/internal/session"
)

type Client struct {
	http *resty.Client
	sess *session.Session
}

func NewClient(cfg *config.APIConfig, sess *session.Session) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := sess.Token(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
			zap.S().Warnw("credencial rejeitada pela API",
				"status", resp.StatusCode(),
				"url", resp.Request.URL,
			)
			sess.Invalidate()
		}
		return nil
	})

	return &Client{http: rc, sess: sess}
}

type errorBody struct {
	Message string `json:"message"`
	Erro    string `json:"erro"`
}

func (c *Client) errorFrom(resp *resty.Response) error {
	status := resp.StatusCode()
	if ClassifyStatus(status) == ErrorClassCredential {
		return ErrCredencialInvalida
	}

	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)

	message := body.Message
	if message == "" {
		message = body.Erro
	}
	if message == "" {
		message = genericMessage
	}

	return &Error{Status: status, Message: message}
}
