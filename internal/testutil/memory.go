// Package testutil provides in-memory repository implementations for
// usecase tests, so business rules can be exercised without a database.
package testutil

import (
	"fmt"
	"sort"
	"time"

	"github.com/saviored/focuscastle/internal/domain"
	"gorm.io/gorm"
)

// Store is a shared in-memory dataset backing all fake repositories
type Store struct {
	nextID    int64
	Users     map[int64]*domain.User
	Sessions  map[int64]*domain.FocusSession
	Chests    map[int64]*domain.TreasureChest
	Castles   map[int64]*domain.Castle
	Templates map[string]*domain.ItemTemplate
	Items     map[string]*domain.UserItem
	Settings  map[string]*domain.Setting
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Users:     map[int64]*domain.User{},
		Sessions:  map[int64]*domain.FocusSession{},
		Chests:    map[int64]*domain.TreasureChest{},
		Castles:   map[int64]*domain.Castle{},
		Templates: map[string]*domain.ItemTemplate{},
		Items:     map[string]*domain.UserItem{},
		Settings:  map[string]*domain.Setting{},
	}
}

// ID hands out the next auto-increment id
func (s *Store) ID() int64 {
	s.nextID++
	return s.nextID
}

// Repositories bundles all fake repositories over the store
func (s *Store) Repositories() domain.Repositories {
	return domain.Repositories{
		Users:     &UserRepo{s},
		Castles:   &CastleRepo{s},
		Sessions:  &SessionRepo{s},
		Chests:    &ChestRepo{s},
		Templates: &TemplateRepo{s},
		Items:     &ItemRepo{s},
		Settings:  &SettingRepo{s},
	}
}

// TxManager returns a fake transaction manager that runs the function
// directly against the store
func (s *Store) TxManager() domain.TxManager {
	return &fakeTxManager{store: s}
}

type fakeTxManager struct {
	store *Store
}

func (m *fakeTxManager) WithinTx(fn func(r domain.Repositories) error) error {
	return fn(m.store.Repositories())
}

// FixedSettings is a SettingsProvider with canned values
type FixedSettings struct {
	UnlockMinutes int64
	Rewards       domain.ChestRewards
}

func (f *FixedSettings) ChestUnlockMinutes() int64 {
	if f.UnlockMinutes == 0 {
		return domain.DefaultChestUnlockMinutes
	}
	return f.UnlockMinutes
}

func (f *FixedSettings) ChestRewards() domain.ChestRewards {
	if f.Rewards == (domain.ChestRewards{}) {
		return domain.ChestRewards{
			Coins:  domain.DefaultChestRewardCoins,
			Wood:   domain.DefaultChestRewardWood,
			Stones: domain.DefaultChestRewardStone,
		}
	}
	return f.Rewards
}

// UserRepo is an in-memory domain.UserRepository
type UserRepo struct{ S *Store }

func (r *UserRepo) GetByID(id int64) (*domain.User, error) {
	return r.S.Users[id], nil
}

func (r *UserRepo) GetByEmail(email string) (*domain.User, error) {
	for _, u := range r.S.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Create(user *domain.User) error {
	if user.ID == 0 {
		user.ID = r.S.ID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.S.Users[user.ID] = user
	return nil
}

func (r *UserRepo) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	r.S.Users[user.ID] = user
	return nil
}

func (r *UserRepo) List(offset, limit int) ([]*domain.User, int64, error) {
	users := r.sorted()
	return page(users, offset, limit), int64(len(users)), nil
}

func (r *UserRepo) ListRanked(orderBy string, offset, limit int) ([]*domain.User, int64, error) {
	users := r.sorted()
	sort.SliceStable(users, func(i, j int) bool {
		switch orderBy {
		case "experience_points":
			return users[i].ExperiencePoints > users[j].ExperiencePoints
		default:
			return users[i].TotalFocusHours > users[j].TotalFocusHours
		}
	})
	return page(users, offset, limit), int64(len(users)), nil
}

func (r *UserRepo) Count() (int64, error) {
	return int64(len(r.S.Users)), nil
}

func (r *UserRepo) CountActive() (int64, error) {
	var n int64
	for _, u := range r.S.Users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *UserRepo) WithTx(tx *gorm.DB) domain.UserRepository { return r }

func (r *UserRepo) sorted() []*domain.User {
	users := make([]*domain.User, 0, len(r.S.Users))
	for _, u := range r.S.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// SessionRepo is an in-memory domain.SessionRepository
type SessionRepo struct{ S *Store }

func (r *SessionRepo) GetByID(id int64) (*domain.FocusSession, error) {
	return r.S.Sessions[id], nil
}

func (r *SessionRepo) Create(session *domain.FocusSession) error {
	if session.ID == 0 {
		session.ID = r.S.ID()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()
	r.S.Sessions[session.ID] = session
	return nil
}

func (r *SessionRepo) Update(session *domain.FocusSession) error {
	session.UpdatedAt = time.Now()
	r.S.Sessions[session.ID] = session
	return nil
}

func (r *SessionRepo) ListByUserID(userID int64, offset, limit int) ([]*domain.FocusSession, int64, error) {
	var sessions []*domain.FocusSession
	for _, s := range r.sorted() {
		if s.UserID == userID {
			sessions = append(sessions, s)
		}
	}
	return page(sessions, offset, limit), int64(len(sessions)), nil
}

func (r *SessionRepo) List(offset, limit int) ([]*domain.FocusSession, int64, error) {
	sessions := r.sorted()
	return page(sessions, offset, limit), int64(len(sessions)), nil
}

func (r *SessionRepo) ListCompleted(limit int) ([]*domain.FocusSession, error) {
	var sessions []*domain.FocusSession
	for _, s := range r.sorted() {
		if s.IsCompleted {
			sessions = append(sessions, s)
		}
	}
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (r *SessionRepo) Count() (int64, error) {
	return int64(len(r.S.Sessions)), nil
}

func (r *SessionRepo) CountCompleted() (int64, error) {
	var n int64
	for _, s := range r.S.Sessions {
		if s.IsCompleted {
			n++
		}
	}
	return n, nil
}

func (r *SessionRepo) SumCompletedSeconds() (int64, error) {
	var sum int64
	for _, s := range r.S.Sessions {
		if s.IsCompleted {
			sum += s.TotalSeconds
		}
	}
	return sum, nil
}

func (r *SessionRepo) WithTx(tx *gorm.DB) domain.SessionRepository { return r }

func (r *SessionRepo) sorted() []*domain.FocusSession {
	sessions := make([]*domain.FocusSession, 0, len(r.S.Sessions))
	for _, s := range r.S.Sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID > sessions[j].ID })
	return sessions
}

// ChestRepo is an in-memory domain.ChestRepository
type ChestRepo struct{ S *Store }

func (r *ChestRepo) GetCurrentByUserID(userID int64) (*domain.TreasureChest, error) {
	var newest *domain.TreasureChest
	for _, c := range r.S.Chests {
		if c.UserID != userID {
			continue
		}
		if newest == nil || c.ID > newest.ID {
			newest = c
		}
	}
	return newest, nil
}

func (r *ChestRepo) Create(chest *domain.TreasureChest) error {
	if chest.ID == 0 {
		chest.ID = r.S.ID()
	}
	chest.CreatedAt = time.Now()
	chest.UpdatedAt = time.Now()
	r.S.Chests[chest.ID] = chest
	return nil
}

func (r *ChestRepo) Update(chest *domain.TreasureChest) error {
	chest.UpdatedAt = time.Now()
	r.S.Chests[chest.ID] = chest
	return nil
}

func (r *ChestRepo) List(offset, limit int) ([]*domain.TreasureChest, int64, error) {
	chests := make([]*domain.TreasureChest, 0, len(r.S.Chests))
	for _, c := range r.S.Chests {
		chests = append(chests, c)
	}
	sort.Slice(chests, func(i, j int) bool { return chests[i].ID > chests[j].ID })
	return page(chests, offset, limit), int64(len(chests)), nil
}

func (r *ChestRepo) Count() (int64, error) {
	return int64(len(r.S.Chests)), nil
}

func (r *ChestRepo) CountUnlocked() (int64, error) {
	var n int64
	for _, c := range r.S.Chests {
		if c.IsUnlocked {
			n++
		}
	}
	return n, nil
}

func (r *ChestRepo) CountClaimed() (int64, error) {
	var n int64
	for _, c := range r.S.Chests {
		if c.IsClaimed {
			n++
		}
	}
	return n, nil
}

func (r *ChestRepo) WithTx(tx *gorm.DB) domain.ChestRepository { return r }

// CastleRepo is an in-memory domain.CastleRepository keyed by user
type CastleRepo struct{ S *Store }

func (r *CastleRepo) GetByUserID(userID int64) (*domain.Castle, error) {
	return r.S.Castles[userID], nil
}

func (r *CastleRepo) Create(castle *domain.Castle) error {
	if castle.ID == 0 {
		castle.ID = r.S.ID()
	}
	castle.CreatedAt = time.Now()
	castle.UpdatedAt = time.Now()
	r.S.Castles[castle.UserID] = castle
	return nil
}

func (r *CastleRepo) Update(castle *domain.Castle) error {
	castle.UpdatedAt = time.Now()
	r.S.Castles[castle.UserID] = castle
	return nil
}

func (r *CastleRepo) List(offset, limit int) ([]*domain.Castle, int64, error) {
	castles := make([]*domain.Castle, 0, len(r.S.Castles))
	for _, c := range r.S.Castles {
		castles = append(castles, c)
	}
	sort.Slice(castles, func(i, j int) bool { return castles[i].ID < castles[j].ID })
	return page(castles, offset, limit), int64(len(castles)), nil
}

func (r *CastleRepo) Count() (int64, error) {
	return int64(len(r.S.Castles)), nil
}

func (r *CastleRepo) WithTx(tx *gorm.DB) domain.CastleRepository { return r }

// TemplateRepo is an in-memory domain.TemplateRepository
type TemplateRepo struct{ S *Store }

func (r *TemplateRepo) GetByItemID(itemID string) (*domain.ItemTemplate, error) {
	return r.S.Templates[itemID], nil
}

func (r *TemplateRepo) GetByItemIDs(itemIDs []string) ([]*domain.ItemTemplate, error) {
	var templates []*domain.ItemTemplate
	for _, id := range itemIDs {
		if t, ok := r.S.Templates[id]; ok {
			templates = append(templates, t)
		}
	}
	return templates, nil
}

func (r *TemplateRepo) List(category, rarity string) ([]*domain.ItemTemplate, error) {
	var templates []*domain.ItemTemplate
	for _, t := range r.S.Templates {
		if category != "" && string(t.Category) != category {
			continue
		}
		if rarity != "" && string(t.Rarity) != rarity {
			continue
		}
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].ItemID < templates[j].ItemID })
	return templates, nil
}

func (r *TemplateRepo) Create(template *domain.ItemTemplate) error {
	if template.ID == 0 {
		template.ID = r.S.ID()
	}
	r.S.Templates[template.ItemID] = template
	return nil
}

func (r *TemplateRepo) WithTx(tx *gorm.DB) domain.TemplateRepository { return r }

// ItemRepo is an in-memory domain.UserItemRepository
type ItemRepo struct{ S *Store }

func itemKey(userID int64, itemID string) string {
	return fmt.Sprintf("%d/%s", userID, itemID)
}

func (r *ItemRepo) GetByUserAndItem(userID int64, itemID string) (*domain.UserItem, error) {
	return r.S.Items[itemKey(userID, itemID)], nil
}

func (r *ItemRepo) ListByUserID(userID int64) ([]*domain.UserItem, error) {
	var items []*domain.UserItem
	for _, i := range r.S.Items {
		if i.UserID == userID {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

func (r *ItemRepo) Create(item *domain.UserItem) error {
	if item.ID == 0 {
		item.ID = r.S.ID()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	r.S.Items[itemKey(item.UserID, item.ItemID)] = item
	return nil
}

func (r *ItemRepo) Update(item *domain.UserItem) error {
	item.UpdatedAt = time.Now()
	r.S.Items[itemKey(item.UserID, item.ItemID)] = item
	return nil
}

func (r *ItemRepo) Delete(item *domain.UserItem) error {
	delete(r.S.Items, itemKey(item.UserID, item.ItemID))
	return nil
}

func (r *ItemRepo) WithTx(tx *gorm.DB) domain.UserItemRepository { return r }

// SettingRepo is an in-memory domain.SettingRepository
type SettingRepo struct{ S *Store }

func (r *SettingRepo) GetByKey(key string) (*domain.Setting, error) {
	return r.S.Settings[key], nil
}

func (r *SettingRepo) List() ([]*domain.Setting, error) {
	var settings []*domain.Setting
	for _, s := range r.S.Settings {
		settings = append(settings, s)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}

func (r *SettingRepo) Upsert(setting *domain.Setting) error {
	if existing, ok := r.S.Settings[setting.Key]; ok {
		setting.ID = existing.ID
		setting.CreatedAt = existing.CreatedAt
	} else {
		setting.ID = r.S.ID()
		setting.CreatedAt = time.Now()
	}
	setting.UpdatedAt = time.Now()
	r.S.Settings[setting.Key] = setting
	return nil
}

func (r *SettingRepo) WithTx(tx *gorm.DB) domain.SettingRepository { return r }

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
