// Package reportqueries provides read-only aggregate queries for reports.
package reportqueries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountRegisteredPerCourse returns, for each given course ID, how many
// active students hold it in their course list. Courses nobody is
// enrolled in are absent from the map; tombstoned students never count.
func CountRegisteredPerCourse(
	ctx context.Context,
	db *mongo.Database,
	courseIDs []string,
) (map[string]int64, error) {
	result := make(map[string]int64)

	if len(courseIDs) == 0 {
		return result, nil
	}

	pipeline := []bson.M{
		{"$match": bson.M{
			"isDeleted": false,
			"courses":   bson.M{"$in": courseIDs},
		}},
		{"$unwind": "$courses"},
		{"$match": bson.M{"courses": bson.M{"$in": courseIDs}}},
		{"$group": bson.M{"_id": "$courses", "count": bson.M{"$sum": 1}}},
	}

	cur, err := db.Collection("students").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		result[row.ID] = row.Count
	}

	return result, cur.Err()
}
