package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"skindrop/internal/models"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrCaseNotFound          = errors.New("case not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrWithdrawalNotFound    = errors.New("withdrawal not found")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrItemNotAvailable      = errors.New("inventory item is not available")
)

// MemoryPath отключает файловый ввод-вывод: хранилище живёт только в памяти.
// Тесты получают с ним изолированные экземпляры.
const MemoryPath = ":memory:"

// Store держит пять коллекций в памяти и целиком переписывает резервный
// JSON-документ при каждой мутации. Все последовательности
// проверка-изменение-запись выполняются под одним мьютексом, так что мутации
// строго сериализованы.
type Store struct {
	mu    sync.RWMutex
	path  string
	state State
}

// New создаёт хранилище, загружая и нормализуя существующий снапшот, если он
// есть.
func New(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// newestFirst возвращает копию среза в обратном порядке: коллекции хранятся в
// порядке добавления, клиентам отдаются свежие записи первыми.
func newestFirst[T any](in []T) []T {
	out := make([]T, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		out = append(out, in[i])
	}
	return out
}

// UserByTelegramID ищет пользователя по внешнему id.
func (s *Store) UserByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Users {
		if s.state.Users[i].TelegramID == telegramID {
			user := s.state.Users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Users возвращает всех пользователей, свежие первыми.
func (s *Store) Users(ctx context.Context) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.state.Users)
}

// ActiveCases возвращает активные кейсы каталога, свежие первыми.
func (s *Store) ActiveCases(ctx context.Context) []models.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Case, 0, len(s.state.Cases))
	for i := len(s.state.Cases) - 1; i >= 0; i-- {
		if s.state.Cases[i].Active {
			out = append(out, s.state.Cases[i])
		}
	}
	return out
}

// Cases возвращает весь каталог, включая неактивные кейсы, свежие первыми.
func (s *Store) Cases(ctx context.Context) []models.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.state.Cases)
}

// ActiveCaseByID ищет активный кейс по id. Неактивный кейс равнозначен
// отсутствующему.
func (s *Store) ActiveCaseByID(ctx context.Context, id int64) (*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Cases {
		if s.state.Cases[i].ID == id && s.state.Cases[i].Active {
			c := s.state.Cases[i]
			return &c, nil
		}
	}
	return nil, ErrCaseNotFound
}

// UserOpenings возвращает последние открытия пользователя, свежие первыми.
// limit <= 0 снимает ограничение.
func (s *Store) UserOpenings(ctx context.Context, userID uuid.UUID, limit int) []models.Opening {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Opening{}
	for i := len(s.state.Openings) - 1; i >= 0; i-- {
		if s.state.Openings[i].UserID != userID {
			continue
		}
		out = append(out, s.state.Openings[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// UserWithdrawals возвращает последние заявки пользователя, свежие первыми.
// limit <= 0 снимает ограничение.
func (s *Store) UserWithdrawals(ctx context.Context, userID uuid.UUID, limit int) []models.Withdrawal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Withdrawal{}
	for i := len(s.state.Withdrawals) - 1; i >= 0; i-- {
		if s.state.Withdrawals[i].UserID != userID {
			continue
		}
		out = append(out, s.state.Withdrawals[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// RecentWithdrawals возвращает последние заявки всех пользователей, свежие
// первыми. limit <= 0 снимает ограничение.
func (s *Store) RecentWithdrawals(ctx context.Context, limit int) []models.Withdrawal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Withdrawal{}
	for i := len(s.state.Withdrawals) - 1; i >= 0; i-- {
		out = append(out, s.state.Withdrawals[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// UserInventory возвращает предметы пользователя в заданном статусе, свежие
// первыми. Пустой статус снимает фильтр.
func (s *Store) UserInventory(ctx context.Context, userID uuid.UUID, status models.InventoryStatus) []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.InventoryItem{}
	for i := len(s.state.Inventory) - 1; i >= 0; i-- {
		item := s.state.Inventory[i]
		if item.UserID != userID {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		out = append(out, item)
	}
	return out
}

// InventoryItemByOwner ищет предмет по id среди принадлежащих пользователю.
// Чужой предмет равнозначен отсутствующему.
func (s *Store) InventoryItemByOwner(ctx context.Context, userID, itemID uuid.UUID) (*models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Inventory {
		if s.state.Inventory[i].ID == itemID && s.state.Inventory[i].UserID == userID {
			item := s.state.Inventory[i]
			return &item, nil
		}
	}
	return nil, ErrInventoryItemNotFound
}

// GetOrCreateUser возвращает пользователя по внешнему id, создавая его с
// нулевым балансом при первом входе. Непустое имя обновляет сохранённое.
func (s *Store) GetOrCreateUser(ctx context.Context, telegramID, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		u := &s.state.Users[i]
		if u.TelegramID != telegramID {
			continue
		}
		if username != "" && username != u.Username {
			u.Username = username
			if err := s.persistLocked(); err != nil {
				return nil, err
			}
		}
		user := *u
		return &user, nil
	}

	user := models.User{
		ID:         uuid.New(),
		TelegramID: telegramID,
		Username:   username,
		CreatedAt:  time.Now(),
	}
	s.state.Users = append(s.state.Users, user)
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdjustBalance изменяет баланс пользователя на дельту со знаком и возвращает
// обновлённого пользователя.
func (s *Store) AdjustBalance(ctx context.Context, telegramID string, delta int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		u := &s.state.Users[i]
		if u.TelegramID != telegramID {
			continue
		}
		u.BalanceCoins += delta
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		user := *u
		return &user, nil
	}
	return nil, ErrUserNotFound
}

// AddCase добавляет кейс в каталог, присваивая следующий числовой id, и
// возвращает его.
func (s *Store) AddCase(ctx context.Context, c models.Case) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for i := range s.state.Cases {
		if s.state.Cases[i].ID > maxID {
			maxID = s.state.Cases[i].ID
		}
	}
	c.ID = maxID + 1
	c.Active = true
	s.state.Cases = append(s.state.Cases, c)
	if err := s.persistLocked(); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// RecordOpening атомарно проводит открытие кейса: проверяет и списывает
// баланс, добавляет запись истории и предмет инвентаря, сохраняет снапшот
// один раз. При нехватке средств состояние не меняется.
func (s *Store) RecordOpening(ctx context.Context, opening models.Opening, item models.InventoryItem) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *models.User
	for i := range s.state.Users {
		if s.state.Users[i].ID == opening.UserID {
			user = &s.state.Users[i]
			break
		}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.BalanceCoins < opening.Spent {
		return nil, ErrInsufficientBalance
	}

	user.BalanceCoins -= opening.Spent
	s.state.Openings = append(s.state.Openings, opening)
	s.state.Inventory = append(s.state.Inventory, item)
	if err := s.persistLocked(); err != nil {
		return nil, err
	}

	updated := *user
	return &updated, nil
}

// CreateWithdrawal атомарно создаёт заявку на вывод: переводит предмет в
// pending_withdrawal, обновляет трейд-адрес пользователя и добавляет заявку.
// Предмет должен принадлежать пользователю заявки и быть доступным.
func (s *Store) CreateWithdrawal(ctx context.Context, w models.Withdrawal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item *models.InventoryItem
	for i := range s.state.Inventory {
		if s.state.Inventory[i].ID == w.InventoryItemID && s.state.Inventory[i].UserID == w.UserID {
			item = &s.state.Inventory[i]
			break
		}
	}
	if item == nil {
		return ErrInventoryItemNotFound
	}
	if item.Status != models.InventoryStatusAvailable {
		return ErrItemNotAvailable
	}

	var user *models.User
	for i := range s.state.Users {
		if s.state.Users[i].ID == w.UserID {
			user = &s.state.Users[i]
			break
		}
	}
	if user == nil {
		return ErrUserNotFound
	}

	item.Status = models.InventoryStatusPendingWithdrawal
	user.TradeAddress = w.TradeAddress
	s.state.Withdrawals = append(s.state.Withdrawals, w)
	return s.persistLocked()
}

// SetWithdrawalStatus безусловно выставляет статус заявки. Непустой
// itemStatus переводит связанный предмет инвентаря, если тот ещё существует.
func (s *Store) SetWithdrawalStatus(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, itemStatus models.InventoryStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var w *models.Withdrawal
	for i := range s.state.Withdrawals {
		if s.state.Withdrawals[i].ID == id {
			w = &s.state.Withdrawals[i]
			break
		}
	}
	if w == nil {
		return ErrWithdrawalNotFound
	}

	w.Status = status
	if itemStatus != "" {
		for i := range s.state.Inventory {
			if s.state.Inventory[i].ID == w.InventoryItemID {
				s.state.Inventory[i].Status = itemStatus
				break
			}
		}
	}
	return s.persistLocked()
}
