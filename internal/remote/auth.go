package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// AuthUser is the identity record the auth surface returns.
type AuthUser struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"user_metadata,omitempty"`
}

// Session is a confirmed credential session.
type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

type authError struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Code             any    `json:"code"`
}

// SignUp registers new credentials. Metadata travels with the signup so the
// backend trigger can stamp the profile row.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Session, error) {
	payload := map[string]any{"email": email, "password": password}
	if len(metadata) > 0 {
		payload["data"] = metadata
	}
	return c.authPost(ctx, "/auth/v1/signup", payload)
}

// SignInWithPassword exchanges credentials for a session. Auth failures
// surface the remote message verbatim.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	return c.authPost(ctx, "/auth/v1/token?grant_type=password", map[string]any{
		"email":    email,
		"password": password,
	})
}

// SignOut revokes the given session token. Best-effort at the caller.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAuthError(resp)
	}
	return nil
}

// User probes the auth surface for the session behind the token. This is a
// fresh check, not a read of any locally cached actor.
func (c *Client) User(ctx context.Context, accessToken string) (*AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeAuthError(resp)
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) authPost(ctx context.Context, path string, payload any) (*Session, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeAuthError(resp)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func decodeAuthError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var ae authError
	_ = json.Unmarshal(raw, &ae)

	msg := ae.Message
	if msg == "" {
		msg = ae.Msg
	}
	if msg == "" {
		msg = ae.ErrorDescription
	}
	if msg == "" {
		msg = fmt.Sprintf("authentication failed with status %d", resp.StatusCode)
	}

	code := ""
	if ae.Code != nil {
		code = fmt.Sprint(ae.Code)
	}
	return &Error{Status: resp.StatusCode, Message: msg, Code: code}
}
