package repository

import (
	"net/url"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query values arrive as strings; these sets drive the cast back to the
// stored types so equality filters match what is actually persisted.
var objectIDFields = map[string]bool{
	"_id":        true,
	"created_by": true,
	"ordered_by": true,
}

var numericFields = map[string]bool{
	"price":           true,
	"quantity":        true,
	"buying_quantity": true,
	"total_price":     true,
	"order_count":     true,
}

// FilterFromQuery builds a field-equality filter from request query
// parameters. Repeated keys keep the first value.
func FilterFromQuery(query url.Values) bson.M {
	filter := bson.M{}
	for key, values := range query {
		if len(values) == 0 {
			continue
		}
		filter[key] = castFilterValue(key, values[0])
	}
	return filter
}

func castFilterValue(key, raw string) interface{} {
	if objectIDFields[key] {
		if id, err := primitive.ObjectIDFromHex(raw); err == nil {
			return id
		}
		return raw
	}
	if numericFields[key] {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return n
		}
	}
	return raw
}

// NameSearch returns a case-insensitive substring match on name.
// The needle is escaped, so regex metacharacters match literally.
func NameSearch(search string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
}
