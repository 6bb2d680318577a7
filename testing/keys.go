package testing

import (
	"fmt"

	"github.com/gavin9402/paimon/types"
)

// Key builds a PartitionKey from plain Go scalars.
//
// Supported field types: nil, bool, int32, int64, int (stored as int64),
// float64, string, []byte. Any other type panics; this helper is for tests
// only.
//
// Example:
//
//	key := paimontest.Key("us-east", int32(20260825))
func Key(fields ...any) types.PartitionKey {
	values := make([]types.Value, len(fields))
	for i, field := range fields {
		switch v := field.(type) {
		case nil:
			values[i] = types.NullValue()
		case bool:
			values[i] = types.BoolValue(v)
		case int32:
			values[i] = types.Int32Value(v)
		case int64:
			values[i] = types.Int64Value(v)
		case int:
			values[i] = types.Int64Value(int64(v))
		case float64:
			values[i] = types.Float64Value(v)
		case string:
			values[i] = types.StringValue(v)
		case []byte:
			values[i] = types.BytesValue(v)
		default:
			panic(fmt.Sprintf("testing.Key: unsupported field type %T", field))
		}
	}

	return types.NewPartitionKey(values...)
}
