package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя системы, привязанного к внешнему telegram-id.
type User struct {
	ID           uuid.UUID `json:"id"`
	TelegramID   string    `json:"telegram_id"`
	Username     string    `json:"username,omitempty"`
	TradeAddress string    `json:"trade_address,omitempty"`
	BalanceCoins int64     `json:"balance_coins"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserProfile - срез состояния пользователя: профиль, последняя история
// открытий и заявок, доступный инвентарь.
type UserProfile struct {
	User        *User           `json:"user"`
	History     []Opening       `json:"history"`
	Withdrawals []Withdrawal    `json:"withdrawals"`
	Inventory   []InventoryItem `json:"inventory"`
}

// AuthRequest - запрос на вход по внешнему id (get-or-create).
type AuthRequest struct {
	ExternalID  string `json:"externalId"`
	DisplayName string `json:"displayName"`
}

// TopUpRequest - запрос на пополнение баланса.
type TopUpRequest struct {
	ExternalID string  `json:"externalId"`
	Amount     float64 `json:"amount"`
}

// AdjustBalanceRequest - админская корректировка баланса (дельта со знаком).
type AdjustBalanceRequest struct {
	ExternalID string `json:"externalId"`
	CoinsDelta int64  `json:"coinsDelta"`
}
