package mock

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/muster/backend/internal/config"
	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
)

type Params struct {
	Seed            uint32 `validate:"required"` // 0 是 xorshift 的不动点
	Size            int    `validate:"gte=0"`
	ArrivedCount    int    `validate:"gte=0,ltefield=Size"`
	NotArrivedCount int    `validate:"gte=0,ltefield=Size"`
	Reference       Point
	// 为零值时使用 time.Now()
	Now time.Time
}

func DefaultParams() Params {
	return Params{
		Seed:            42,
		Size:            80,
		ArrivedCount:    72,
		NotArrivedCount: 8,
		Reference:       Point{Lon: 113.264, Lat: 23.129},
	}
}

func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Seed:            cfg.Generator.Seed,
		Size:            cfg.Generator.Size,
		ArrivedCount:    cfg.Generator.ArrivedCount,
		NotArrivedCount: cfg.Generator.NotArrivedCount,
		Reference:       Point{Lon: cfg.Generator.ReferenceLon, Lat: cfg.Generator.ReferenceLat},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.ArrivedCount+p.NotArrivedCount != p.Size {
		return fmt.Errorf("%w: %d + %d != %d", ErrCountMismatch, p.ArrivedCount, p.NotArrivedCount, p.Size)
	}
	return nil
}

// NewDataset 生成完整的数据集，应在启动时调用一次。返回值归调用方所有。
func NewDataset(p Params) (*domain.Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("生成参数无效: %w", err)
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	// 时间戳以毫秒为精度
	now = now.Truncate(time.Millisecond)

	r := NewXorshift32(p.Seed)
	population := GeneratePopulation(r, p.Size)

	arrived, notArrived, err := Partition(population, p.ArrivedCount, p.NotArrivedCount)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{
		Seed:         p.Seed,
		GeneratedAt:  now,
		ReferenceLon: p.Reference.Lon,
		ReferenceLat: p.Reference.Lat,
		Arrived:      arrived,
		NotArrived:   AugmentWithTracking(r, notArrived, p.Reference, now),
	}, nil
}
