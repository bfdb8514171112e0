package authclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Documents are constants; user input only ever travels in variables.
const (
	loginMutation = `mutation Login($username: String!, $password: String!) {
  login(username: $username, password: $password) {
    success
    message
    token
    isAdmin
  }
}`

	registerMutation = `mutation Register($username: String!, $password: String!) {
  register(username: $username, password: $password) {
    success
    message
    token
    userId
  }
}`

	verifyEmailMutation = `mutation VerifyEmail($token: String!) {
  verifyEmail(token: $token) {
    success
    message
    token
    isAdmin
  }
}`
)

const snippetLimit = 50

type gqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

type authPayload struct {
	Success flag            `json:"success"`
	Message *string         `json:"message"`
	Token   *string         `json:"token"`
	IsAdmin flag            `json:"isAdmin"`
	UserID  json.RawMessage `json:"userId"`
}

func (p authPayload) message() string {
	if p.Message == nil {
		return ""
	}
	return strings.TrimSpace(*p.Message)
}

func (p authPayload) token() string {
	if p.Token == nil {
		return ""
	}
	return *p.Token
}

func (p authPayload) userID() string {
	raw := bytes.TrimSpace(p.UserID)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// flag is the canonical boolean for role and success flags. The server sends
// them as booleans or as 1/0, sometimes quoted.
type flag bool

func (f *flag) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch strings.ToLower(strings.Trim(s, `"`)) {
	case "true", "1":
		*f = true
		return nil
	case "false", "0", "null", "":
		*f = false
		return nil
	}
	if n, err := strconv.ParseFloat(strings.Trim(s, `"`), 64); err == nil {
		*f = n != 0
		return nil
	}
	return fmt.Errorf("invalid boolean flag %s", snippet([]byte(s)))
}

// snippet returns at most snippetLimit characters of raw for diagnostics.
func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "?")
	}
	if utf8.RuneCountInString(s) <= snippetLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:snippetLimit]) + "…"
}
