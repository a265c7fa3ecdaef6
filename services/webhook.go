package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	svix "github.com/svix/svix-webhooks/go"

	"hotel-admin/models"
)

const UnknownIP = "unknown"

var (
	ErrMissingSignatureHeaders = errors.New("missing svix headers")
	ErrInvalidSignature        = errors.New("invalid signature")
	ErrWebhookNotConfigured    = errors.New("webhook secret not configured")
	ErrInvalidPayload          = errors.New("invalid webhook payload")
)

// SignatureVerifier checks the svix-id, svix-timestamp and svix-signature headers against the payload.
type SignatureVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

func NewSvixVerifier(secret string) (SignatureVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrWebhookNotConfigured
	}
	return svix.NewWebhook(secret)
}

type SessionActivity struct {
	IPAddress      string `json:"ip_address"`
	BrowserName    string `json:"browser_name"`
	BrowserVersion string `json:"browser_version"`
	DeviceType     string `json:"device_type"`
	IsMobile       bool   `json:"is_mobile"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

type SessionData struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	ClientID       string           `json:"client_id"`
	Status         string           `json:"status"`
	IPAddress      string           `json:"ip_address"`
	UserAgent      string           `json:"user_agent"`
	LatestActivity *SessionActivity `json:"latest_activity"`
}

type SessionEvent struct {
	Type string      `json:"type"`
	Data SessionData `json:"data"`
}

var sessionEvents = map[string]bool{
	"session.created": true,
	"session.ended":   true,
	"session.removed": true,
}

// WebhookService turns verified identity-provider session events into activity log entries.
type WebhookService struct {
	Verifier SignatureVerifier
	Logger   *ActivityLogger
}

func NewWebhookService(verifier SignatureVerifier, logger *ActivityLogger) *WebhookService {
	return &WebhookService{Verifier: verifier, Logger: logger}
}

// Handle verifies payload and records session events. It reports false for
// verified events of any other type.
func (s *WebhookService) Handle(ctx context.Context, payload []byte, headers http.Header) (bool, error) {
	if headers.Get("svix-id") == "" || headers.Get("svix-timestamp") == "" || headers.Get("svix-signature") == "" {
		return false, ErrMissingSignatureHeaders
	}
	if s.Verifier == nil {
		return false, ErrWebhookNotConfigured
	}
	if err := s.Verifier.Verify(payload, headers); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var evt SessionEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if !sessionEvents[evt.Type] {
		return false, nil
	}

	entry := &models.ActivityLog{
		ActionType:   evt.Type,
		ResourceType: "session",
		ResourceID:   evt.Data.ID,
		ActorID:      evt.Data.UserID,
		IPAddress:    sessionIP(evt.Data),
		Metadata:     sessionMetadata(evt.Data),
	}
	if err := s.Logger.Log(ctx, entry); err != nil {
		return false, fmt.Errorf("log session event: %w", err)
	}
	return true, nil
}

// sessionIP prefers the latest activity address over the session-level one.
func sessionIP(d SessionData) string {
	var candidates []string
	if d.LatestActivity != nil {
		candidates = append(candidates, d.LatestActivity.IPAddress)
	}
	candidates = append(candidates, d.IPAddress)
	for _, ip := range candidates {
		if ip = strings.TrimSpace(ip); ip != "" {
			return ip
		}
	}
	return UnknownIP
}

func sessionMetadata(d SessionData) map[string]any {
	meta := map[string]any{
		"session_id": d.ID,
		"client_id":  d.ClientID,
		"status":     d.Status,
		"user_agent": d.UserAgent,
	}
	if a := d.LatestActivity; a != nil {
		if meta["user_agent"] == "" {
			meta["user_agent"] = strings.TrimSpace(a.BrowserName + " " + a.BrowserVersion)
		}
		meta["device"] = map[string]any{
			"type":      a.DeviceType,
			"is_mobile": a.IsMobile,
			"browser":   a.BrowserName,
			"version":   a.BrowserVersion,
		}
		meta["location"] = map[string]any{
			"city":    a.City,
			"country": a.Country,
		}
	}
	return meta
}
