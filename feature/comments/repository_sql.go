package comments

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

type commentRecord struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Message     string    `gorm:"size:500;not null"`
	OwnerID     string    `gorm:"size:36;not null;index"`
	PostID      string    `gorm:"size:36;not null;index"`
	PublishDate time.Time `gorm:"not null;index"`
}

func (commentRecord) TableName() string {
	return "comments"
}

func (r commentRecord) toComment() Comment {
	return Comment{ID: r.ID, Message: r.Message, OwnerID: r.OwnerID, PostID: r.PostID, PublishDate: r.PublishDate}
}

// SQLRepository stores comments through GORM.
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository creates a GORM-backed repository.
func NewSQLRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&commentRecord{})
}

func (r *SQLRepository) List(ctx context.Context, filter Filter, page pagination.Params) ([]Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&commentRecord{})
	if filter.PostID != "" {
		q = q.Where("post_id = ?", filter.PostID)
	}
	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var records []commentRecord
	err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "publish_date"}, Desc: page.Descending()}).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make([]Comment, len(records))
	for i, rec := range records {
		out[i] = rec.toComment()
	}
	return out, total, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (*Comment, error) {
	var rec commentRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %s: %w", id, err)
	}
	c := rec.toComment()
	return &c, nil
}

func (r *SQLRepository) Create(ctx context.Context, c *Comment) error {
	rec := commentRecord{ID: c.ID, Message: c.Message, OwnerID: c.OwnerID, PostID: c.PostID, PublishDate: c.PublishDate}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&commentRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&commentRecord{}).Error
}
