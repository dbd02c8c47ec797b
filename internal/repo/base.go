package repo

import (
	"errors"

	"gorm.io/gorm"
)

// Base 泛型 CRUD 基座，各实体 repo 组合使用。
// 查不到统一返回 (nil, nil)，调用方据此区分 404 与 500。
type Base[T any] struct{ db *gorm.DB }

func NewBase[T any](db *gorm.DB) Base[T] { return Base[T]{db: db} }

func (b Base[T]) GetByID(id any) (*T, error) {
	var v T
	err := b.db.First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (b Base[T]) GetOne(query any, args ...any) (*T, error) {
	var v T
	err := b.db.Where(query, args...).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List 带过滤/排序/分页的查询；limit<=0 表示不分页
func (b Base[T]) List(order string, offset, limit int, query any, args ...any) ([]T, int64, error) {
	var m T
	tx := b.db.Model(&m)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if limit > 0 {
		tx = tx.Offset(offset).Limit(limit)
	}
	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (b Base[T]) Create(v *T) error { return b.db.Create(v).Error }
func (b Base[T]) Update(v *T) error { return b.db.Save(v).Error }

func (b Base[T]) Delete(id any) error {
	var v T
	return b.db.Delete(&v, "id = ?", id).Error
}

func (b Base[T]) Count(query any, args ...any) (int64, error) {
	var m T
	tx := b.db.Model(&m)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	var n int64
	err := tx.Count(&n).Error
	return n, err
}
