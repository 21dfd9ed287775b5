package mappers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/persistence/models"
)

// sessionPayload is the canonical session body stored in the payload column.
type sessionPayload struct {
	ID       uint   `json:"id"`
	Provider string `json:"provider"`
}

// legacySessionPayload is the shape written by the previous session stack,
// which stored the raw OIDC claims. Only the subject is recoverable; it
// maps to the user ID of a replit-federated account.
type legacySessionPayload struct {
	Claims struct {
		Sub string `json:"sub"`
	} `json:"claims"`
}

// SessionMapper converts between session entities and models, handling
// both the canonical payload shape and the legacy claims shape.
type SessionMapper interface {
	ToEntity(model *models.SessionModel) (*user.Session, error)
	ToModel(entity *user.Session) (*models.SessionModel, error)
}

type sessionMapper struct{}

// NewSessionMapper creates a new session mapper
func NewSessionMapper() SessionMapper {
	return &sessionMapper{}
}

func (m *sessionMapper) ToEntity(model *models.SessionModel) (*user.Session, error) {
	if model == nil {
		return nil, nil
	}

	userID, provider, err := DecodeSessionPayload([]byte(model.Payload))
	if err != nil {
		return nil, err
	}

	return &user.Session{
		ID:        model.ID,
		UserID:    userID,
		Provider:  provider,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}, nil
}

func (m *sessionMapper) ToModel(entity *user.Session) (*models.SessionModel, error) {
	if entity == nil {
		return nil, nil
	}

	payload, err := json.Marshal(sessionPayload{
		ID:       entity.UserID,
		Provider: entity.Provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session payload: %w", err)
	}

	return &models.SessionModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Payload:   datatypes.JSON(payload),
		ExpiresAt: entity.ExpiresAt,
		CreatedAt: entity.CreatedAt,
	}, nil
}

// DecodeSessionPayload extracts the user ID and provider from a session
// payload. Legacy rows that stored raw claims decode via the sub claim and
// report the replit provider, since only that flow ever wrote them.
func DecodeSessionPayload(payload []byte) (uint, string, error) {
	if len(payload) == 0 {
		return 0, "", fmt.Errorf("session payload is empty")
	}

	var canonical sessionPayload
	if err := json.Unmarshal(payload, &canonical); err == nil && canonical.ID != 0 {
		provider := canonical.Provider
		if provider == "" {
			provider = "replit"
		}
		return canonical.ID, provider, nil
	}

	var legacy legacySessionPayload
	if err := json.Unmarshal(payload, &legacy); err == nil && legacy.Claims.Sub != "" {
		id, err := strconv.ParseUint(legacy.Claims.Sub, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("legacy session sub is not a user ID: %q", legacy.Claims.Sub)
		}
		return uint(id), "replit", nil
	}

	return 0, "", fmt.Errorf("unrecognized session payload shape")
}
