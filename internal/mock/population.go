package mock

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
)

var ErrCountMismatch = errors.New("已到人数与未到人数之和必须等于总人数")

const (
	jitterSpan      = 0.02
	lastSeenWindow  = 3_600_000 // 毫秒，一小时
	trackLength     = 5
	trackStepFactor = 0.001
	trackInterval   = 60_000 // 毫秒
)

type Point struct {
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
}

// GeneratePopulation 按顺序生成 size 个人员，顺序决定了后续的到岗划分
func GeneratePopulation(r *Xorshift32, size int) []domain.Person {
	people := make([]domain.Person, size)

	for i := range people {
		group := 1
		if i%2 != 0 {
			group = 2
		}

		// 抽取顺序不能改变，否则同一种子下的数据会变化
		people[i] = domain.Person{
			ID:       i + 1,
			Name:     Pick(r, names),
			Group:    group,
			Position: Pick(r, positions),
			Room:     Pick(r, rooms),
			Dept:     Pick(r, depts),
			Shift:    Pick(r, shifts),
			Phone:    r.Phone(),
			Avatar:   DefaultAvatar,
		}
	}

	return people
}

// Partition 前 arrivedCount 个为已到，紧接着的 notArrivedCount 个为未到
func Partition(population []domain.Person, arrivedCount int, notArrivedCount int) ([]domain.Person, []domain.Person, error) {
	if arrivedCount < 0 || notArrivedCount < 0 {
		return nil, nil, fmt.Errorf("人数不能为负数: arrived=%d, notArrived=%d", arrivedCount, notArrivedCount)
	}
	if arrivedCount+notArrivedCount != len(population) {
		return nil, nil, fmt.Errorf("%w: %d + %d != %d", ErrCountMismatch, arrivedCount, notArrivedCount, len(population))
	}

	arrived := slices.Clone(population[:arrivedCount])
	notArrived := slices.Clone(population[arrivedCount : arrivedCount+notArrivedCount])

	return arrived, notArrived, nil
}

// AugmentWithTracking 为未到人员生成最后已知位置、置信度、区域和近期轨迹
func AugmentWithTracking(r *Xorshift32, people []domain.Person, ref Point, now time.Time) []domain.UnresolvedPerson {
	result := make([]domain.UnresolvedPerson, 0, len(people))

	for _, p := range people {
		baseLon := ref.Lon + (r.Next()-0.5)*jitterSpan
		baseLat := ref.Lat + (r.Next()-0.5)*jitterSpan
		lastTime := now.Add(-time.Duration(math.Floor(r.Next()*lastSeenWindow)) * time.Millisecond)
		confidence := math.Round(r.Next()*100) / 100
		lastArea := Pick(r, areas)

		track := make([]domain.TrackPoint, trackLength)
		for i := range track {
			factor := float64(i+1) * trackStepFactor
			track[i] = domain.TrackPoint{
				Lon:  baseLon - factor*(r.Next()-0.5),
				Lat:  baseLat - factor*(r.Next()-0.5),
				Time: lastTime.Add(-time.Duration(trackLength-1-i) * trackInterval * time.Millisecond),
			}
		}

		result = append(result, domain.UnresolvedPerson{
			Person:     p,
			LastLon:    baseLon,
			LastLat:    baseLat,
			LastTime:   lastTime,
			Confidence: confidence,
			LastArea:   lastArea,
			Track:      track,
		})
	}

	return result
}
