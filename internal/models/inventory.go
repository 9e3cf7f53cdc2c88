package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryStatus описывает состояние предмета в инвентаре.
type InventoryStatus string

const (
	InventoryStatusAvailable         InventoryStatus = "available"
	InventoryStatusPendingWithdrawal InventoryStatus = "pending_withdrawal"
	InventoryStatusWithdrawn         InventoryStatus = "withdrawn"
)

// InventoryItem - конкретный выигранный предмет, принадлежащий пользователю.
// Поля награды - снимок значений на момент выигрыша, независимый от каталога.
type InventoryItem struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	SkinName       string          `json:"skin_name"`
	ImageURL       string          `json:"image_url"`
	Rarity         string          `json:"rarity"`
	SteamValue     decimal.Decimal `json:"steam_value"`
	SourceCaseID   int64           `json:"source_case_id"`
	SourceCaseName string          `json:"source_case_name"`
	Status         InventoryStatus `json:"status"`
	AcquiredAt     time.Time       `json:"acquired_at"`
}
