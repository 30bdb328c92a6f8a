package dto

import "time"

type TrafficBucketResponse struct {
	Time       string `json:"time"`
	Congestion int    `json:"congestion"`
	Accidents  int    `json:"accidents"`
}

type CurrentTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type TrafficResponse struct {
	Success     bool                    `json:"success"`
	Data        []TrafficBucketResponse `json:"data"`
	Timestamp   time.Time               `json:"timestamp"`
	CurrentTime CurrentTime             `json:"currentTime"`
}
