package maxmind

import (
	"fmt"
	"net"
	"sync"

	"biogate.io/infrastructure/ipresolver/types"
	"biogate.io/infrastructure/logger"
	"github.com/oschwald/maxminddb-golang"
)

type MaxMindIPResolver struct {
	mu sync.RWMutex
	db *maxminddb.Reader
}

// ConnectToDB opens the GeoLite2 city database at path. Lookups fail
// with ErrResolverUnavailable until this succeeds.
func (mmResolver *MaxMindIPResolver) ConnectToDB(path string) error {
	reader, err := maxminddb.Open(path)
	if err != nil {
		logger.Error("could not connect to mmdb", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	mmResolver.mu.Lock()
	mmResolver.db = reader
	mmResolver.mu.Unlock()
	logger.Info("connected to maxmind db successfully")
	return nil
}

func (mmResolver *MaxMindIPResolver) Close() {
	mmResolver.mu.Lock()
	defer mmResolver.mu.Unlock()
	if mmResolver.db != nil {
		mmResolver.db.Close()
		mmResolver.db = nil
	}
}

type maxmindLookupResult struct {
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Location struct {
		Longitude      float64 `maxminddb:"longitude"`
		Latitude       float64 `maxminddb:"latitude"`
		AccuracyRadius int     `maxminddb:"accuracy_radius"`
	} `maxminddb:"location"`
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

func (mmResolver *MaxMindIPResolver) LookUp(ipAddress string) (*types.IPResult, error) {
	mmResolver.mu.RLock()
	defer mmResolver.mu.RUnlock()
	if mmResolver.db == nil {
		return nil, types.ErrResolverUnavailable
	}
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return nil, fmt.Errorf("invalid ip address %q", ipAddress)
	}
	var result maxmindLookupResult
	if err := mmResolver.db.Lookup(ip, &result); err != nil {
		return nil, err
	}
	return &types.IPResult{
		Longitude:      result.Location.Longitude,
		Latitude:       result.Location.Latitude,
		City:           result.City.Names["en"],
		CountryCode:    result.Country.ISOCode,
		AccuracyRadius: result.Location.AccuracyRadius,
		IPAddress:      ipAddress,
	}, nil
}
