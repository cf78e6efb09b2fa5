package db

import "go.mongodb.org/mongo-driver/bson"

// PartialSubdocumentUpdate turns a flat set of field updates into a $set
// instruction scoped to the one array element the caller's compound filter
// resolved to. Field names are written verbatim; validating them against
// the entity schema is the caller's job. Array-valued fields replace the
// stored array, they do not append to it.
func PartialSubdocumentUpdate(scope string, fields bson.M) bson.M {
	return partialUpdate(scope+".$", fields)
}

// PartialSubdocumentUpdateFiltered is the array-filter form used for
// three-level addressing: identifier names an arrayFilters entry that
// picks which nested element receives the write.
func PartialSubdocumentUpdateFiltered(scope, identifier string, fields bson.M) bson.M {
	return partialUpdate(scope+".$["+identifier+"]", fields)
}

func partialUpdate(target string, fields bson.M) bson.M {
	result := bson.M{}
	set := bson.M{}
	for name, value := range fields {
		set[target+"."+name] = value
	}
	if len(set) > 0 {
		result["$set"] = set
	}
	return result
}
