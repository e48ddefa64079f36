package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
)

var ErrSnapshotNotFound = errors.New("数据快照不存在")

func DatasetKey(seed uint32, arrivedCount int, notArrivedCount int) string {
	return fmt.Sprintf("muster:dataset:%d:%d:%d", seed, arrivedCount, notArrivedCount)
}

func (r *Repository) GetDataset(key string) (*domain.Dataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	ds := &domain.Dataset{}
	if err := json.Unmarshal([]byte(raw), ds); err != nil {
		return nil, fmt.Errorf("无法解析数据快照 %s: %w", key, err)
	}

	return ds, nil
}

func (r *Repository) SaveDataset(key string, ds *domain.Dataset) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	return r.kv.Set(ctx, key, string(data), time.Duration(r.cfg.Redis.SnapshotTTL)*time.Second)
}

// EnsureDataset 优先使用已存在的快照，使多个实例共享同一份带时间戳的数据；
// 快照不存在或参考点与 generated 不同时用 generated 覆盖并返回它
func (r *Repository) EnsureDataset(generated *domain.Dataset) (*domain.Dataset, bool, error) {
	key := DatasetKey(generated.Seed, len(generated.Arrived), len(generated.NotArrived))

	existing, err := r.GetDataset(key)
	switch {
	case err == nil:
		// key 已包含种子和人数，参考点需要单独比较
		if existing.ReferenceLon == generated.ReferenceLon && existing.ReferenceLat == generated.ReferenceLat {
			return existing, true, nil
		}
	case errors.Is(err, ErrSnapshotNotFound):
	default:
		return generated, false, err
	}

	if err := r.SaveDataset(key, generated); err != nil {
		return generated, false, err
	}

	return generated, false, nil
}
