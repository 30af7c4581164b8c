// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client provides an HTTP/REST client for the noteboard server.
//
// The [Client] manages the bearer token obtained from Register or Login and
// attaches it to all subsequent authenticated requests. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrForbidden] for 403, [ErrNotFound] for 404).
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/internal/utils"
	"github.com/dkordic/noteboard/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type Client struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewClient constructs a REST client for the noteboard server. It normalises
// and validates the base URL and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewClient(address string, requestTimeout time.Duration, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	httpClient := utils.NewHTTPClient()
	httpClient.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &Client{client: httpClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	return c.token
}

// Register creates a new account via POST /api/user/register. On success the
// bearer token is extracted from the Authorization response header and stored
// via SetToken.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.OwnerProfile, error) {
	var profile models.OwnerProfile

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&profile).
		Post("/api/user/register")
	if err != nil {
		return models.OwnerProfile{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OwnerProfile{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.OwnerProfile{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	c.SetToken(token)
	return profile, nil
}

// Login authenticates via POST /api/user/login. On success the bearer token
// is extracted from the Authorization response header and stored via SetToken.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	c.SetToken(token)
	return nil
}

// CreateNote creates a note via POST /api/notes. The server assigns the owner
// from the authenticated identity.
func (c *Client) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	var created models.Note

	resp, err := c.authorized().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// Notes lists the caller's own notes plus every public note via
// GET /api/notes.
func (c *Client) Notes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// MyNotes lists only the caller's own notes via GET /api/notes/my.
func (c *Client) MyNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&notes).
		Get("/api/notes/my")
	if err != nil {
		return nil, fmt.Errorf("list my notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// NoteByID fetches a single note via GET /api/notes/{id}.
func (c *Client) NoteByID(ctx context.Context, noteID uuid.UUID) (models.Note, error) {
	var note models.Note

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&note).
		Get("/api/notes/" + noteID.String())
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote applies a partial update via PATCH /api/notes/{id}.
func (c *Client) UpdateNote(ctx context.Context, noteID uuid.UUID, update models.NoteUpdate) (models.Note, error) {
	var updated models.Note

	resp, err := c.authorized().
		SetContext(ctx).
		SetBody(update).
		SetResult(&updated).
		Patch("/api/notes/" + noteID.String())
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote removes the caller's own note via DELETE /api/notes/{id}.
func (c *Client) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	resp, err := c.authorized().
		SetContext(ctx).
		Delete("/api/notes/" + noteID.String())
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// AdminNotes lists every note with owner profiles via GET /api/admin/notes.
// Requires the admin role on the server side.
func (c *Client) AdminNotes(ctx context.Context) ([]models.NoteWithOwner, error) {
	var notes []models.NoteWithOwner

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&notes).
		Get("/api/admin/notes")
	if err != nil {
		return nil, fmt.Errorf("admin list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// AdminDeleteNote removes any note via DELETE /api/admin/notes/{id}.
// Requires the admin role on the server side.
func (c *Client) AdminDeleteNote(ctx context.Context, noteID uuid.UUID) error {
	resp, err := c.authorized().
		SetContext(ctx).
		Delete("/api/admin/notes/" + noteID.String())
	if err != nil {
		return fmt.Errorf("admin delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// authorized returns a request builder with the Content-Type and
// Authorization headers pre-set.
func (c *Client) authorized() *resty.Request {
	return c.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.token)
}
