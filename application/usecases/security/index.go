package security_usecases

import (
	"context"
	"strconv"
	"time"

	"biogate.io/application/constants"
	"biogate.io/application/repository"
	"biogate.io/entities"
	"biogate.io/infrastructure/database/repository/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultTimeRangeHours = 24
	maxTimeRangeHours     = 90 * 24
)

type LevelStatistics struct {
	SecurityLevel   string  `bson:"_id" json:"security_level"`
	Count           int64   `bson:"count" json:"count"`
	AvgSeverity     float64 `bson:"avg_severity" json:"avg_severity"`
	UniqueIPCount   int64   `bson:"unique_ip_count" json:"unique_ip_count"`
	UniqueUserCount int64   `bson:"unique_user_count" json:"unique_user_count"`
}

type AuditLogStore interface {
	Recent(ctx context.Context, since time.Time, limit int64) ([]entities.SecurityAuditLog, error)
	Statistics(ctx context.Context, since time.Time) ([]LevelStatistics, error)
}

// ParseTimeRange reads the timeRange query value in hours. Missing or
// unusable values fall back to a day; the upper bound is the retention window.
func ParseTimeRange(raw string) int {
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return DefaultTimeRangeHours
	}
	if hours > maxTimeRangeHours {
		return maxTimeRangeHours
	}
	return hours
}

type MongoAuditLogStore struct {
	Repo *mongo.MongoRepository[entities.SecurityAuditLog]
}

func (store *MongoAuditLogStore) Recent(ctx context.Context, since time.Time, limit int64) ([]entities.SecurityAuditLog, error) {
	logs, err := store.Repo.FindManyPaginated(ctx, map[string]any{
		"timestamp": map[string]any{"$gte": since},
	}, mongo.PaginationOptions{
		Sort:  bson.D{{Key: "timestamp", Value: -1}},
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	return *logs, nil
}

func (store *MongoAuditLogStore) Statistics(ctx context.Context, since time.Time) ([]LevelStatistics, error) {
	return mongo.Aggregate[LevelStatistics](ctx, store.Repo, []bson.M{
		{"$match": bson.M{"timestamp": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id":          "$security_level",
			"count":        bson.M{"$sum": 1},
			"avg_severity": bson.M{"$avg": "$severity_score"},
			"unique_ips":   bson.M{"$addToSet": "$ip_address"},
			"unique_users": bson.M{"$addToSet": "$user_id"},
		}},
		{"$project": bson.M{
			"_id":               1,
			"count":             1,
			"avg_severity":      bson.M{"$round": bson.A{"$avg_severity", 2}},
			"unique_ip_count":   bson.M{"$size": "$unique_ips"},
			"unique_user_count": bson.M{"$size": "$unique_users"},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
}

type Service struct {
	Store AuditLogStore
	Now   func() time.Time
}

func (s *Service) since(hours int) time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Add(-time.Duration(hours) * time.Hour)
}

// RecentAuditLogs returns the newest events of the last hours, newest first.
func (s *Service) RecentAuditLogs(ctx context.Context, hours int) ([]entities.SecurityAuditLog, error) {
	return s.Store.Recent(ctx, s.since(hours), constants.AUDIT_LOG_PAGE_LIMIT)
}

func (s *Service) Statistics(ctx context.Context, hours int) ([]LevelStatistics, error) {
	return s.Store.Statistics(ctx, s.since(hours))
}

func SecurityService() *Service {
	return &Service{Store: &MongoAuditLogStore{Repo: repository.SecurityAuditLogRepo()}}
}
