package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM flattens a struct into bson.M using its bson tags. Unlike a
// plain marshal it unpacks pointers, and it keeps zero values unless the
// field is tagged omitempty, because a projectId of 0 is a legal selector.
func MakeBsonM(selector interface{}) (bson.M, error) {
	val := reflect.ValueOf(selector)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	bsonM := bson.M{}

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		switch {
		case tag.Skip || !field.CanInterface():
			continue
		case tag.OmitEmpty && field.IsZero():
			continue
		case tag.Inline && field.Kind() == reflect.Struct:
			inner, err := MakeBsonM(field.Interface())
			if err != nil {
				return nil, err
			}
			for k, v := range inner {
				bsonM[k] = v
			}
		case field.Kind() == reflect.Ptr && !field.IsNil():
			bsonM[tag.Name] = reflect.Indirect(reflect.ValueOf(field.Interface())).Interface()
		case field.Kind() == reflect.Ptr:
			continue
		default:
			bsonM[tag.Name] = field.Interface()
		}
	}

	return bsonM, nil
}
