package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Thaihung204/GENTRY-BE/internal/core/cache"
	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/repo"
)

// RefDataService 参考数据只读查询，整表结果走 redis 读穿缓存。
// cache 可为 nil（测试或未配置 redis 时直查库）。
type RefDataService struct {
	repo  *repo.RefDataRepo
	cache *cache.Cache
	ttl   time.Duration
}

func NewRefDataService(r *repo.RefDataRepo, c *cache.Cache, ttl time.Duration) *RefDataService {
	return &RefDataService{repo: r, cache: c, ttl: ttl}
}

func (s *RefDataService) Occasions(ctx context.Context) ([]domain.Occasion, error) {
	return listCached(s, ctx, "refdata:occasions", func() ([]domain.Occasion, error) {
		out, _, err := s.repo.Occasions.List("id ASC", 0, 0, nil)
		return out, err
	})
}

func (s *RefDataService) OccasionByID(id int) (*domain.Occasion, error) {
	o, err := s.repo.Occasions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("occasion %d: %w", id, ErrNotFound)
	}
	return o, nil
}

func (s *RefDataService) Weathers(ctx context.Context) ([]domain.Weather, error) {
	return listCached(s, ctx, "refdata:weathers", func() ([]domain.Weather, error) {
		out, _, err := s.repo.Weathers.List("id ASC", 0, 0, nil)
		return out, err
	})
}

func (s *RefDataService) WeatherByID(id int) (*domain.Weather, error) {
	w, err := s.repo.Weathers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("weather %d: %w", id, ErrNotFound)
	}
	return w, nil
}

func (s *RefDataService) Styles(ctx context.Context) ([]domain.Style, error) {
	return listCached(s, ctx, "refdata:styles", func() ([]domain.Style, error) {
		out, _, err := s.repo.Styles.List("id ASC", 0, 0, nil)
		return out, err
	})
}

func (s *RefDataService) StyleByID(id int) (*domain.Style, error) {
	st, err := s.repo.Styles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("style %d: %w", id, ErrNotFound)
	}
	return st, nil
}

func listCached[T any](s *RefDataService, ctx context.Context, key string, load func() ([]T, error)) ([]T, error) {
	if s.cache == nil {
		return load()
	}
	out, err := cache.GetOrLoadJSON(s.cache, ctx, key, s.ttl, func(context.Context) (*[]T, error) {
		v, e := load()
		if e != nil {
			return nil, e
		}
		return &v, nil
	})
	if err != nil || out == nil {
		return nil, err
	}
	return *out, nil
}
