package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"skindrop/internal/auth"
	"skindrop/internal/models"
)

var (
	ErrEmptyExternalID = errors.New("external id is required")
	ErrInvalidAmount   = errors.New("invalid top-up amount")
)

// profileHistoryLimit - сколько последних открытий и заявок попадает в срез
// профиля.
const profileHistoryLimit = 15

// UserService описывает операции над пользователями.
type UserService interface {
	Authenticate(ctx context.Context, externalID, displayName string) (*models.User, string, error)
	Profile(ctx context.Context, externalID string) (*models.UserProfile, error)
	TopUp(ctx context.Context, externalID string, amount float64) (string, *models.User, error)
	AdjustBalance(ctx context.Context, externalID string, delta int64) (*models.User, error)
}

type UserServiceImpl struct {
	storage         UserStorage
	jwtSecret       string
	tokenExpiration time.Duration
}

// NewUserService создаёт сервис пользователей.
func NewUserService(storage UserStorage, jwtSecret string, tokenExpiration time.Duration) *UserServiceImpl {
	return &UserServiceImpl{
		storage:         storage,
		jwtSecret:       jwtSecret,
		tokenExpiration: tokenExpiration,
	}
}

// Authenticate выполняет вход по внешнему id: находит либо создаёт
// пользователя (get-or-create) и выпускает токен.
func (s *UserServiceImpl) Authenticate(ctx context.Context, externalID, displayName string) (*models.User, string, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, "", ErrEmptyExternalID
	}

	user, err := s.storage.GetOrCreateUser(ctx, externalID, displayName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get or create user: %w", err)
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenExpiration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Profile собирает срез состояния пользователя: профиль, последние открытия и
// заявки, доступный инвентарь.
func (s *UserServiceImpl) Profile(ctx context.Context, externalID string) (*models.UserProfile, error) {
	user, err := s.storage.UserByTelegramID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		User:        user,
		History:     s.storage.UserOpenings(ctx, user.ID, profileHistoryLimit),
		Withdrawals: s.storage.UserWithdrawals(ctx, user.ID, profileHistoryLimit),
		Inventory:   s.storage.UserInventory(ctx, user.ID, models.InventoryStatusAvailable),
	}, nil
}

// TopUp пополняет баланс на целую часть суммы и возвращает платёжный
// идентификатор.
func (s *UserServiceImpl) TopUp(ctx context.Context, externalID string, amount float64) (string, *models.User, error) {
	if _, err := s.storage.UserByTelegramID(ctx, externalID); err != nil {
		return "", nil, err
	}
	if amount <= 0 {
		return "", nil, ErrInvalidAmount
	}

	user, err := s.storage.AdjustBalance(ctx, externalID, int64(math.Floor(amount)))
	if err != nil {
		return "", nil, err
	}

	return paymentReference(), user, nil
}

// AdjustBalance применяет админскую дельту со знаком к балансу пользователя.
func (s *UserServiceImpl) AdjustBalance(ctx context.Context, externalID string, delta int64) (*models.User, error) {
	return s.storage.AdjustBalance(ctx, externalID, delta)
}

// paymentReference выпускает идентификатор платежа вида pay_xxxxxxxx.
func paymentReference() string {
	id := uuid.New()
	return "pay_" + hex.EncodeToString(id[:4])
}
