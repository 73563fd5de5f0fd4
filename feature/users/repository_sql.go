package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-network/core/database"
	"social-network/core/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRecord struct {
	ID           string `gorm:"primaryKey;size:36"`
	Title        string `gorm:"size:8"`
	FirstName    string `gorm:"size:50;not null"`
	LastName     string `gorm:"size:50;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	DateOfBirth  *time.Time
	RegisterDate time.Time `gorm:"not null;index"`
	Phone        *string   `gorm:"size:32"`
	Picture      string    `gorm:"size:500"`
	HasLocation  bool
	Location     Location `gorm:"embedded;embeddedPrefix:location_"`
}

func (userRecord) TableName() string {
	return "users"
}

func toRecord(u *User) userRecord {
	rec := userRecord{
		ID:           u.ID,
		Title:        string(u.Title),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		DateOfBirth:  u.DateOfBirth,
		RegisterDate: u.RegisterDate,
		Phone:        u.Phone,
		Picture:      u.Picture,
	}
	if u.Location != nil {
		rec.HasLocation = true
		rec.Location = *u.Location
	}
	return rec
}

func (r userRecord) toUser() User {
	u := User{
		ID:           r.ID,
		Title:        Title(r.Title),
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		DateOfBirth:  r.DateOfBirth,
		RegisterDate: r.RegisterDate,
		Phone:        r.Phone,
		Picture:      r.Picture,
	}
	if r.HasLocation {
		loc := r.Location
		u.Location = &loc
	}
	return u
}

var sqlSortColumns = map[string]string{
	SortRegisterDate: "register_date",
	SortFirstName:    "first_name",
	SortLastName:     "last_name",
}

// SQLRepository stores users through GORM.
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository creates a GORM-backed repository.
func NewSQLRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&userRecord{})
}

func (r *SQLRepository) List(ctx context.Context, filter Filter, page pagination.Params) ([]User, int64, error) {
	q := r.db.WithContext(ctx).Model(&userRecord{})
	if filter.Title != "" {
		q = q.Where("title = ?", filter.Title)
	}
	if filter.Search != "" {
		like := database.Contains(filter.Search)
		q = q.Where("LOWER(first_name) LIKE ? ESCAPE '!' OR LOWER(last_name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!'", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	column, ok := sqlSortColumns[page.SortBy]
	if !ok {
		column = sqlSortColumns[SortRegisterDate]
	}

	var records []userRecord
	err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: page.Descending()}).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]User, len(records))
	for i, rec := range records {
		out[i] = rec.toUser()
	}
	return out, total, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (*User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	u := rec.toUser()
	return &u, nil
}

func (r *SQLRepository) GetMany(ctx context.Context, ids []string) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []userRecord
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	out := make([]User, len(records))
	for i, rec := range records {
		out[i] = rec.toUser()
	}
	return out, nil
}

func (r *SQLRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepository) Create(ctx context.Context, u *User) error {
	rec := toRecord(u)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *SQLRepository) Update(ctx context.Context, id string, changes Changes) (*User, error) {
	var out *User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec userRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			return err
		}
		u := rec.toUser()
		changes.Apply(&u)
		updated := toRecord(&u)
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		out = &u
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return out, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&userRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&userRecord{}).Error
}
