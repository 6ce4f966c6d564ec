// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach
// JSON-Schema validators. On servers that don't support collMod or
// validators (e.g. some DocumentDB versions), we log and skip
// gracefully; the stores re-check the same rules in code.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("students", studentsSchema())
	ensure("courses", coursesSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// studentsSchema mirrors the store-level checks: required names and a
// ten-digit phone number.
func studentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"fullNameEn", "phoneNumber"},
			"properties": bson.M{
				"fullNameEn": bson.M{"bsonType": "string"},
				"fullNameKh": bson.M{"bsonType": "string"},
				"gender": bson.M{
					"enum": bson.A{"Male", "Female", ""},
				},
				"phoneNumber": bson.M{
					"bsonType": "string",
					"pattern":  `\d{10}`,
				},
				"isDeleted": bson.M{"bsonType": "bool"},
				"courses": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
			},
		},
	}
}

func coursesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"Name", "professorName"},
			"properties": bson.M{
				"Name":             bson.M{"bsonType": "string"},
				"professorName":    bson.M{"bsonType": "string"},
				"numberOfStudents": bson.M{"bsonType": "int", "minimum": 0},
				"startDate":        bson.M{"bsonType": "string"},
				"endDate":          bson.M{"bsonType": "string"},
				"isDeleted":        bson.M{"bsonType": "bool"},
			},
		},
	}
}

/* ---------------------- collection helpers & logging ---------------------- */

// ensureCollection creates <name> when it does not exist yet.
// ListCollectionNames first, to avoid a spurious "created" log.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if len(names) > 0 {
		return nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		// Racing creators are fine.
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, schema bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: schema},
		{Key: "validationLevel", Value: "moderate"},
	}
	return db.RunCommand(ctx, cmd).Err()
}

// isUnsupported detects deployments without collMod/validator support.
func isUnsupported(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		// 59: CommandNotFound, 115: CommandNotSupported
		if ce.Code == 59 || ce.Code == 115 {
			return true
		}
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such command") || strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}
