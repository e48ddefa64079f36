package mock

import (
	"context"
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
)

const DefaultLatency = 300 * time.Millisecond

var ErrPersonNotFound = errors.New("人员不存在")

// Fetcher 模拟远端接口：每次调用先等待固定延迟，再返回数据的深拷贝。
// 数据集在构造后只读，多个 goroutine 可以同时调用。
type Fetcher struct {
	dataset *domain.Dataset
	latency time.Duration
}

func NewFetcher(ds *domain.Dataset, latency time.Duration) *Fetcher {
	return &Fetcher{
		dataset: ds.Clone(),
		latency: latency,
	}
}

func (f *Fetcher) Latency() time.Duration {
	return f.latency
}

func (f *Fetcher) Seed() uint32 {
	return f.dataset.Seed
}

func (f *Fetcher) GeneratedAt() time.Time {
	return f.dataset.GeneratedAt
}

func (f *Fetcher) wait(ctx context.Context) error {
	if f.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Fetcher) FetchArrivedPeople(ctx context.Context) ([]domain.Person, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return domain.ClonePeople(f.dataset.Arrived), nil
}

func (f *Fetcher) FetchNotArrivedPeople(ctx context.Context) ([]domain.UnresolvedPerson, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return domain.CloneUnresolvedPeople(f.dataset.NotArrived), nil
}

// FetchNotArrivedPerson 返回单个未到人员及其轨迹，用于地图视图
func (f *Fetcher) FetchNotArrivedPerson(ctx context.Context, id int) (*domain.UnresolvedPerson, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	for _, p := range f.dataset.NotArrived {
		if p.ID == id {
			c := p.Clone()
			return &c, nil
		}
	}

	return nil, ErrPersonNotFound
}
