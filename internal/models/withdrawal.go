package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus описывает состояние заявки на вывод.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusSent     WithdrawalStatus = "sent"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// ParseWithdrawalStatus приводит строку к статусу заявки. Второе значение
// false, если строка не входит в допустимый набор.
func ParseWithdrawalStatus(s string) (WithdrawalStatus, bool) {
	switch status := WithdrawalStatus(s); status {
	case WithdrawalStatusPending, WithdrawalStatusApproved, WithdrawalStatusSent, WithdrawalStatusRejected:
		return status, true
	default:
		return "", false
	}
}

// Withdrawal - заявка пользователя на вывод предмета во внешнюю трейд-систему.
// Поля награды - снимок значений предмета на момент создания заявки.
type Withdrawal struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	InventoryItemID uuid.UUID        `json:"inventory_item_id"`
	SkinName        string           `json:"skin_name"`
	ImageURL        string           `json:"image_url"`
	Rarity          string           `json:"rarity"`
	SteamValue      decimal.Decimal  `json:"steam_value"`
	TradeAddress    string           `json:"trade_address"`
	Status          WithdrawalStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
}

// WithdrawRequest - запрос пользователя на вывод предмета.
type WithdrawRequest struct {
	ExternalID         string `json:"externalId"`
	InventoryItemID    string `json:"inventoryItemId"`
	DestinationAddress string `json:"destinationAddress"`
}

// WithdrawalStatusRequest - запрос администратора на смену статуса заявки.
type WithdrawalStatusRequest struct {
	Status string `json:"status"`
}
