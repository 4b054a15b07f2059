package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/MKhiriev/go-spellbook/models"
)

type httpSpellAPIAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSpellAPIAdapter constructs the REST implementation of
// [SpellAPIAdapter]. It normalises and validates the base URL from
// cfg.SpellAPIURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.SpellAPIURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPSpellAPIAdapter(cfg config.Adapter, logger *logger.Logger) (SpellAPIAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.SpellAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid spell api address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpSpellAPIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// GetSpell implements [SpellAPIAdapter]. It GETs spells/{key}.
func (h *httpSpellAPIAdapter) GetSpell(ctx context.Context, key string) (models.Spell, error) {
	var spell models.Spell
	if err := h.get(ctx, "/spells/{key}", map[string]string{"key": key}, nil, &spell); err != nil {
		return models.Spell{}, err
	}
	return spell, nil
}

// ListSpells implements [SpellAPIAdapter]. Unset filter fields are not sent.
func (h *httpSpellAPIAdapter) ListSpells(ctx context.Context, filter models.SpellFilter) (models.APIReferenceList, error) {
	query := make(map[string]string, 2)
	if filter.Level != nil {
		query["level"] = strconv.Itoa(*filter.Level)
	}
	if filter.School != "" {
		query["school"] = filter.School
	}

	var list models.APIReferenceList
	if err := h.get(ctx, "/spells", nil, query, &list); err != nil {
		return models.APIReferenceList{}, err
	}
	return list, nil
}

// GetClass implements [SpellAPIAdapter]. It GETs classes/{key}.
func (h *httpSpellAPIAdapter) GetClass(ctx context.Context, key string) (models.Class, error) {
	var class models.Class
	if err := h.get(ctx, "/classes/{key}", map[string]string{"key": key}, nil, &class); err != nil {
		return models.Class{}, err
	}
	return class, nil
}

// ListClassSpells implements [SpellAPIAdapter]. It GETs classes/{key}/spells.
func (h *httpSpellAPIAdapter) ListClassSpells(ctx context.Context, key string) (models.APIReferenceList, error) {
	var list models.APIReferenceList
	if err := h.get(ctx, "/classes/{key}/spells", map[string]string{"key": key}, nil, &list); err != nil {
		return models.APIReferenceList{}, err
	}
	return list, nil
}

func (h *httpSpellAPIAdapter) get(ctx context.Context, path string, pathParams, query map[string]string, out any) error {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		log.Err(err).Str("func", "*httpSpellAPIAdapter.get").Str("path", path).Msg("reference api request failed")
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*httpSpellAPIAdapter.get").
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Msg("reference api returned an error status")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		log.Err(err).Str("func", "*httpSpellAPIAdapter.get").Str("url", resp.Request.URL).Msg("error decoding reference api response")
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return nil
}
