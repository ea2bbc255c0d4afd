package domain

// Repositories is the transactional repository set handed to a
// TxManager callback. Every repository in it is bound to the same
// database transaction.
type Repositories struct {
	Users     UserRepository
	Castles   CastleRepository
	Sessions  SessionRepository
	Chests    ChestRepository
	Templates TemplateRepository
	Items     UserItemRepository
	Settings  SettingRepository
}

// TxManager runs a function inside a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// so multi-record mutations (claim, craft, completion payout) are
// all-or-nothing.
type TxManager interface {
	WithinTx(fn func(r Repositories) error) error
}
