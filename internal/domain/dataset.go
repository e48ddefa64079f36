package domain

import "time"

type Dataset struct {
	Seed        uint32    `json:"seed" yaml:"seed"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	// 生成未到人员位置时使用的参考点
	ReferenceLon float64            `json:"referenceLon" yaml:"referenceLon"`
	ReferenceLat float64            `json:"referenceLat" yaml:"referenceLat"`
	Arrived      []Person           `json:"arrived" yaml:"arrived"`
	NotArrived   []UnresolvedPerson `json:"notArrived" yaml:"notArrived"`
}

func (d *Dataset) Size() int {
	return len(d.Arrived) + len(d.NotArrived)
}

func (d *Dataset) Clone() *Dataset {
	return &Dataset{
		Seed:         d.Seed,
		GeneratedAt:  d.GeneratedAt,
		ReferenceLon: d.ReferenceLon,
		ReferenceLat: d.ReferenceLat,
		Arrived:      ClonePeople(d.Arrived),
		NotArrived:   CloneUnresolvedPeople(d.NotArrived),
	}
}
