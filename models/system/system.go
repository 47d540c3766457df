package system

import "time"

type SystemInfo struct {
	Parames []Parame  `json:"parames"`
	Time    time.Time `json:"time"`
}

type Parame struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

type Ram struct {
	Total      float32 `json:"total"`
	Used       float32 `json:"used"`
	Percentage float32 `json:"percentage"`
}

type DiskCap struct {
	Name       string  `json:"name"`
	Total      float32 `json:"total"`
	Used       float32 `json:"used"`
	Percentage float32 `json:"percentage"`
}

type NetIO struct {
	Name string  `json:"name"`
	In   float32 `json:"in"`
	Out  float32 `json:"out"`
}
