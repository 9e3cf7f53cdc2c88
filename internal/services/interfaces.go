package services

import (
	"context"

	"github.com/google/uuid"

	"skindrop/internal/models"
)

// UserStorage определяет интерфейс хранилища для работы с пользователями.
type UserStorage interface {
	GetOrCreateUser(ctx context.Context, telegramID, username string) (*models.User, error)
	UserByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
	AdjustBalance(ctx context.Context, telegramID string, delta int64) (*models.User, error)
	UserOpenings(ctx context.Context, userID uuid.UUID, limit int) []models.Opening
	UserWithdrawals(ctx context.Context, userID uuid.UUID, limit int) []models.Withdrawal
	UserInventory(ctx context.Context, userID uuid.UUID, status models.InventoryStatus) []models.InventoryItem
}

// CaseStorage определяет интерфейс хранилища для работы с каталогом кейсов.
type CaseStorage interface {
	ActiveCases(ctx context.Context) []models.Case
	AddCase(ctx context.Context, c models.Case) (int64, error)
}

// OpeningStorage определяет интерфейс хранилища для транзакции открытия
// кейса.
type OpeningStorage interface {
	UserByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
	ActiveCaseByID(ctx context.Context, id int64) (*models.Case, error)
	RecordOpening(ctx context.Context, opening models.Opening, item models.InventoryItem) (*models.User, error)
}

// WithdrawalStorage определяет интерфейс хранилища для жизненного цикла
// заявок на вывод.
type WithdrawalStorage interface {
	UserByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
	InventoryItemByOwner(ctx context.Context, userID, itemID uuid.UUID) (*models.InventoryItem, error)
	CreateWithdrawal(ctx context.Context, w models.Withdrawal) error
	SetWithdrawalStatus(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, itemStatus models.InventoryStatus) error
}

// AdminStorage определяет интерфейс хранилища для админской сводки.
type AdminStorage interface {
	Users(ctx context.Context) []models.User
	Cases(ctx context.Context) []models.Case
	RecentWithdrawals(ctx context.Context, limit int) []models.Withdrawal
}
