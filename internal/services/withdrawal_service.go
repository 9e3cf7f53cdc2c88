package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"skindrop/internal/models"
	"skindrop/internal/storage"
)

var (
	ErrEmptyTradeAddress = errors.New("destination address is required")
	ErrInvalidStatus     = errors.New("invalid withdrawal status")
)

// WithdrawalService описывает жизненный цикл заявок на вывод.
type WithdrawalService interface {
	Request(ctx context.Context, externalID, inventoryItemID, destinationAddress string) (*models.Withdrawal, error)
	SetStatus(ctx context.Context, withdrawalID, status string) error
}

type WithdrawalServiceImpl struct {
	storage WithdrawalStorage
}

// NewWithdrawalService создаёт сервис заявок на вывод.
func NewWithdrawalService(storage WithdrawalStorage) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{storage: storage}
}

// Request создаёт заявку на вывод доступного предмета: предмет переходит в
// pending_withdrawal, трейд-адрес пользователя обновляется, заявка создаётся
// в статусе pending со снимком значений предмета.
func (s *WithdrawalServiceImpl) Request(ctx context.Context, externalID, inventoryItemID, destinationAddress string) (*models.Withdrawal, error) {
	user, err := s.storage.UserByTelegramID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	destinationAddress = strings.TrimSpace(destinationAddress)
	if destinationAddress == "" {
		return nil, ErrEmptyTradeAddress
	}

	// Некорректный id равнозначен отсутствующему предмету
	itemID, err := uuid.Parse(inventoryItemID)
	if err != nil {
		return nil, storage.ErrInventoryItemNotFound
	}

	item, err := s.storage.InventoryItemByOwner(ctx, user.ID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != models.InventoryStatusAvailable {
		return nil, storage.ErrItemNotAvailable
	}

	w := models.Withdrawal{
		ID:              uuid.New(),
		UserID:          user.ID,
		InventoryItemID: item.ID,
		SkinName:        item.SkinName,
		ImageURL:        item.ImageURL,
		Rarity:          item.Rarity,
		SteamValue:      item.SteamValue,
		TradeAddress:    destinationAddress,
		Status:          models.WithdrawalStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := s.storage.CreateWithdrawal(ctx, w); err != nil {
		return nil, err
	}

	return &w, nil
}

// SetStatus безусловно переводит заявку в целевой статус. rejected возвращает
// связанный предмет в available, sent переводит его в withdrawn; повторная
// установка того же статуса заново применяет побочный эффект.
func (s *WithdrawalServiceImpl) SetStatus(ctx context.Context, withdrawalID, status string) error {
	parsed, ok := models.ParseWithdrawalStatus(status)
	if !ok {
		return ErrInvalidStatus
	}

	id, err := uuid.Parse(withdrawalID)
	if err != nil {
		return storage.ErrWithdrawalNotFound
	}

	var itemStatus models.InventoryStatus
	switch parsed {
	case models.WithdrawalStatusRejected:
		itemStatus = models.InventoryStatusAvailable
	case models.WithdrawalStatusSent:
		itemStatus = models.InventoryStatusWithdrawn
	}

	return s.storage.SetWithdrawalStatus(ctx, id, parsed, itemStatus)
}
