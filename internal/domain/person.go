package domain

import "time"

type Person struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Group    int    `json:"group" yaml:"group"`
	Position string `json:"position" yaml:"position"`
	Room     string `json:"room" yaml:"room"`
	Dept     string `json:"dept" yaml:"dept"`
	Shift    string `json:"shift" yaml:"shift"`
	Phone    string `json:"phone" yaml:"phone"`
	Avatar   string `json:"avatar" yaml:"avatar"`
}

type TrackPoint struct {
	Lon  float64   `json:"lon" yaml:"lon"`
	Lat  float64   `json:"lat" yaml:"lat"`
	Time time.Time `json:"time" yaml:"time"`
}

// UnresolvedPerson 未到岗人员，附带最后已知位置与近期轨迹
type UnresolvedPerson struct {
	Person     `yaml:",inline"`
	LastLon    float64      `json:"lastLon" yaml:"lastLon"`
	LastLat    float64      `json:"lastLat" yaml:"lastLat"`
	LastTime   time.Time    `json:"lastTime" yaml:"lastTime"`
	Confidence float64      `json:"confidence" yaml:"confidence"`
	LastArea   string       `json:"lastArea" yaml:"lastArea"`
	Track      []TrackPoint `json:"track" yaml:"track"`
}

func (p UnresolvedPerson) Clone() UnresolvedPerson {
	c := p
	if p.Track != nil {
		c.Track = make([]TrackPoint, len(p.Track))
		copy(c.Track, p.Track)
	}
	return c
}

func ClonePeople(people []Person) []Person {
	c := make([]Person, len(people))
	copy(c, people)
	return c
}

func CloneUnresolvedPeople(people []UnresolvedPerson) []UnresolvedPerson {
	c := make([]UnresolvedPerson, len(people))
	for i, p := range people {
		c[i] = p.Clone()
	}
	return c
}
