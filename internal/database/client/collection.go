package client

import (
	"context"

	"hrms/internal/core"
)

// Record 集合元素需有 int 主鍵
type Record interface {
	GetID() int
	SetID(id int)
}

// Collection 型別安全的集合存取。讀取不需鎖；
// 所有讀-改-寫都走 Mutate，檢查與寫入在同一把集合鎖內完成。
type Collection[T Record] struct {
	store *StoreClient
	name  core.Collection
}

func NewCollection[T Record](store *StoreClient, name core.Collection) Collection[T] {
	return Collection[T]{store: store, name: name}
}

// Load 讀取全部記錄（無鎖快照）
func (c Collection[T]) Load(ctx context.Context) ([]T, error) {
	var records []T
	if err := c.store.Read(c.name, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get 以 ID 取單筆；查無回 ErrNotFound
func (c Collection[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if rec.GetID() == id {
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

// Tx 單一集合的讀-改-寫交易。fn 回傳錯誤時不落盤。
type Tx[T Record] struct {
	Records []T

	collection Collection[T]
	ctx        context.Context
	dirty      bool
}

// Append 配發新 ID 並加入記錄
func (tx *Tx[T]) Append(rec T) (T, error) {
	maxID := 0
	for _, r := range tx.Records {
		if r.GetID() > maxID {
			maxID = r.GetID()
		}
	}
	id, err := tx.collection.store.NextID(tx.ctx, tx.collection.name, maxID)
	if err != nil {
		var zero T
		return zero, err
	}
	rec.SetID(id)
	tx.Records = append(tx.Records, rec)
	tx.dirty = true
	return rec, nil
}

// Find 以 ID 找記錄
func (tx *Tx[T]) Find(id int) (T, bool) {
	for _, rec := range tx.Records {
		if rec.GetID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Remove 以 ID 移除記錄；回傳是否存在
func (tx *Tx[T]) Remove(id int) bool {
	for i, rec := range tx.Records {
		if rec.GetID() == id {
			tx.Records = append(tx.Records[:i], tx.Records[i+1:]...)
			tx.dirty = true
			return true
		}
	}
	return false
}

// MarkDirty 就地修改記錄（指標型別）後呼叫，標記需要落盤
func (tx *Tx[T]) MarkDirty() {
	tx.dirty = true
}

// Mutate 在集合鎖內執行 fn；fn 成功且有變更才寫回
func (c Collection[T]) Mutate(ctx context.Context, fn func(tx *Tx[T]) error) error {
	release, err := c.store.Acquire(ctx, c.name)
	if err != nil {
		return err
	}
	defer release()

	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	tx := &Tx[T]{Records: records, collection: c, ctx: ctx}
	if err := fn(tx); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}
	if tx.Records == nil {
		tx.Records = []T{} // 空集合寫出 []，不寫 null
	}
	return c.store.Write(c.name, tx.Records)
}

// Update 以 ID 找到記錄後套用 mutate；查無回 ErrNotFound
func (c Collection[T]) Update(ctx context.Context, id int, mutate func(rec T) error) (T, error) {
	var updated T
	err := c.Mutate(ctx, func(tx *Tx[T]) error {
		rec, ok := tx.Find(id)
		if !ok {
			return ErrNotFound
		}
		if err := mutate(rec); err != nil {
			return err
		}
		updated = rec
		tx.MarkDirty()
		return nil
	})
	return updated, err
}

// Delete 以 ID 刪除；查無回 ErrNotFound
func (c Collection[T]) Delete(ctx context.Context, id int) error {
	return c.Mutate(ctx, func(tx *Tx[T]) error {
		if !tx.Remove(id) {
			return ErrNotFound
		}
		return nil
	})
}
