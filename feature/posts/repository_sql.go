package posts

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

type postRecord struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Text        string          `gorm:"size:1000;not null"`
	Image       string          `gorm:"size:500;not null"`
	Likes       int             `gorm:"not null;default:0;index"`
	Link        *string         `gorm:"size:200"`
	OwnerID     string          `gorm:"size:36;not null;index"`
	PublishDate time.Time       `gorm:"not null;index"`
	Tags        []postTagRecord `gorm:"foreignKey:PostID"`
}

func (postRecord) TableName() string {
	return "posts"
}

// postTagRecord keeps the tag order of a post through Position.
type postTagRecord struct {
	PostID   string `gorm:"primaryKey;size:36"`
	Position int    `gorm:"primaryKey"`
	Tag      string `gorm:"size:100;not null;index"`
}

func (postTagRecord) TableName() string {
	return "post_tags"
}

func tagRecords(postID string, tags []string) []postTagRecord {
	out := make([]postTagRecord, len(tags))
	for i, tag := range tags {
		out[i] = postTagRecord{PostID: postID, Position: i, Tag: tag}
	}
	return out
}

func toRecord(p *Post) postRecord {
	return postRecord{
		ID:          p.ID,
		Text:        p.Text,
		Image:       p.Image,
		Likes:       p.Likes,
		Link:        p.Link,
		OwnerID:     p.OwnerID,
		PublishDate: p.PublishDate,
		Tags:        tagRecords(p.ID, p.Tags),
	}
}

func (r postRecord) toPost() Post {
	tags := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		tags[i] = t.Tag
	}
	return Post{
		ID:          r.ID,
		Text:        r.Text,
		Image:       r.Image,
		Likes:       r.Likes,
		Link:        r.Link,
		Tags:        tags,
		OwnerID:     r.OwnerID,
		PublishDate: r.PublishDate,
	}
}

var sqlSortColumns = map[string]string{
	SortPublishDate: "publish_date",
	SortLikes:       "likes",
}

func orderedTags(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// SQLRepository stores posts through GORM.
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository creates a GORM-backed repository.
func NewSQLRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&postRecord{}, &postTagRecord{})
}

func (r *SQLRepository) List(ctx context.Context, filter Filter, page pagination.Params) ([]Post, int64, error) {
	db := r.db.WithContext(ctx)
	q := db.Model(&postRecord{})
	if filter.Search != "" {
		q = q.Where("LOWER(text) LIKE ? ESCAPE '!'", database.Contains(filter.Search))
	}
	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Tag != "" {
		q = q.Where("id IN (?)", db.Model(&postTagRecord{}).Select("post_id").Where("tag = ?", filter.Tag))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	column, ok := sqlSortColumns[page.SortBy]
	if !ok {
		column = sqlSortColumns[SortPublishDate]
	}

	var records []postRecord
	err := q.
		Preload("Tags", orderedTags).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: page.Descending()}).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	out := make([]Post, len(records))
	for i, rec := range records {
		out[i] = rec.toPost()
	}
	return out, total, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (*Post, error) {
	var rec postRecord
	err := r.db.WithContext(ctx).Preload("Tags", orderedTags).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	p := rec.toPost()
	return &p, nil
}

func (r *SQLRepository) Create(ctx context.Context, p *Post) error {
	rec := toRecord(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *SQLRepository) Update(ctx context.Context, id string, in UpdateInput) (*Post, error) {
	var out *Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec postRecord
		if err := tx.Preload("Tags", orderedTags).First(&rec, "id = ?", id).Error; err != nil {
			return err
		}
		p := rec.toPost()
		in.Apply(&p)

		updated := toRecord(&p)
		if err := tx.Omit("Tags").Save(&updated).Error; err != nil {
			return err
		}
		if in.Tags != nil {
			if err := tx.Where("post_id = ?", id).Delete(&postTagRecord{}).Error; err != nil {
				return err
			}
			if len(updated.Tags) > 0 {
				if err := tx.Create(&updated.Tags).Error; err != nil {
					return err
				}
			}
		}
		out = &p
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", id, err)
	}
	return out, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&postTagRecord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&postRecord{}, "id = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	if affected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&postTagRecord{}).Error; err != nil {
			return err
		}
		return all.Delete(&postRecord{}).Error
	})
}

func (r *SQLRepository) Tags(ctx context.Context) ([]string, error) {
	var tags []string
	err := r.db.WithContext(ctx).Model(&postTagRecord{}).Distinct("tag").Order("tag").Pluck("tag", &tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}
