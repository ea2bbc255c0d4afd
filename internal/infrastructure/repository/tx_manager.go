package repository

import (
	"github.com/saviored/focuscastle/internal/domain"

	"gorm.io/gorm"
)

// TxManager implements domain.TxManager over a gorm connection
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) domain.TxManager {
	return &TxManager{db: db}
}

// WithinTx runs fn inside a single database transaction. Every
// repository handed to fn is bound to that transaction; the commit is
// all-or-nothing.
func (m *TxManager) WithinTx(fn func(r domain.Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(domain.Repositories{
			Users:     &UserRepository{db: tx},
			Castles:   &CastleRepository{db: tx},
			Sessions:  &SessionRepository{db: tx},
			Chests:    &ChestRepository{db: tx},
			Templates: &TemplateRepository{db: tx},
			Items:     &UserItemRepository{db: tx},
			Settings:  &SettingRepository{db: tx},
		})
	})
}
