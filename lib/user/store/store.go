package userstore

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"talentflow-backend/lib/apperr"
	"talentflow-backend/lib/recordstore"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(name, email, passwordHash string) (*dbmodels.User, error)
	GetByID(id string) (*dbmodels.User, error)
	GetByEmail(email string) (*dbmodels.User, error)
}

func NewInstance(store *recordstore.Store) Provider {
	return &impl{store: store}
}

type impl struct {
	store *recordstore.Store
}

func (i impl) table() recordstore.Table {
	return i.store.Table(recordstore.TableUsers)
}

func (i impl) Create(name, email, passwordHash string) (*dbmodels.User, error) {
	if existing, _ := i.GetByEmail(email); existing != nil {
		return nil, apperr.Errorf(apperr.KindConflict, "email already registered: %v", email)
	}
	now := time.Now().UTC()
	rec := dbmodels.User{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     name,
		Email:    strings.ToLower(email),
		Password: passwordHash,
	}
	if err := recordstore.SetAs(i.table(), rec.ID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	return recordstore.GetAs[dbmodels.User](i.table(), id)
}

func (i impl) GetByEmail(email string) (*dbmodels.User, error) {
	all, err := recordstore.ListAs[dbmodels.User](i.table())
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(email)
	for _, user := range all {
		if user.Email == needle {
			return &user, nil
		}
	}
	return nil, apperr.Errorf(apperr.KindNotFound, "user not found: %v", email)
}
