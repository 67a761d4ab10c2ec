package types

import "errors"

type IPResolver interface {
	LookUp(ipAddress string) (*IPResult, error)
}

var ErrResolverUnavailable = errors.New("ip resolver database is not loaded")

type IPResult struct {
	AccuracyRadius int     `bson:"accuracy_radius" json:"accuracy_radius"`
	IPAddress      string  `bson:"ip_address" json:"ip_address"`
	Longitude      float64 `bson:"longitude" json:"longitude"`
	Latitude       float64 `bson:"latitude" json:"latitude"`
	City           string  `bson:"city" json:"city"`
	CountryCode    string  `bson:"country_code" json:"country_code"`
}
