package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Opening - неизменяемая запись истории об одном открытии кейса.
type Opening struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	CaseID     int64           `json:"case_id"`
	CaseName   string          `json:"case_name"`
	Spent      int64           `json:"spent"`
	SkinName   string          `json:"skin_name"`
	ImageURL   string          `json:"image_url"`
	Rarity     string          `json:"rarity"`
	SteamValue decimal.Decimal `json:"steam_value"`
	OpenedAt   time.Time       `json:"opened_at"`
}
