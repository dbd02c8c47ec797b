package repo

import (
	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

type FeedbackRepo struct {
	Base[domain.Feedback]
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{Base: NewBase[domain.Feedback](db), db: db}
}

func (r *FeedbackRepo) Create(f *domain.Feedback) error { return r.Base.Create(f) }

func (r *FeedbackRepo) FindByID(id string) (*domain.Feedback, error) { return r.GetByID(id) }

func (r *FeedbackRepo) ListVisible(offset, limit int) ([]domain.Feedback, int64, error) {
	return r.Base.List("created_at DESC", offset, limit, "is_visible = ?", true)
}

func (r *FeedbackRepo) ListAll(offset, limit int) ([]domain.Feedback, int64, error) {
	return r.Base.List("created_at DESC", offset, limit, nil)
}

func (r *FeedbackRepo) Update(f *domain.Feedback) error { return r.Base.Update(f) }

func (r *FeedbackRepo) Delete(id string) error { return r.Base.Delete(id) }

// Stats 聚合统计（可见与隐藏都计入），在 SQL 侧按星级分组
func (r *FeedbackRepo) Stats() (*domain.FeedbackStats, error) {
	st := &domain.FeedbackStats{Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}

	type bucket struct {
		Rating int
		N      int64
	}
	var buckets []bucket
	err := r.db.Model(&domain.Feedback{}).
		Select("rating, COUNT(*) AS n").
		Group("rating").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	var sum int64
	for _, b := range buckets {
		st.Total += b.N
		sum += int64(b.Rating) * b.N
		if b.Rating >= 1 && b.Rating <= 5 {
			st.Distribution[b.Rating] = b.N
		}
	}
	if st.Total > 0 {
		st.AverageRating = float64(sum) / float64(st.Total)
	}

	if err := r.db.Model(&domain.Feedback{}).Where("is_visible = ?", true).Count(&st.Visible).Error; err != nil {
		return nil, err
	}
	st.Hidden = st.Total - st.Visible
	return st, nil
}
