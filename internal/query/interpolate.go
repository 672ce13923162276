package query

import (
	"fmt"
	"strings"
	"time"
)

// Interpolate returns a formatted query for logging.
// Each "?" is replaced in order; string arguments are quoted with embedded
// quotes doubled.
func Interpolate(sql string, args []any) string {
	var b strings.Builder
	next := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && next < len(args) {
			b.WriteString(literal(args[next]))
			next++
			continue
		}
		b.WriteByte(sql[i])
	}
	return b.String()
}

func literal(arg any) string {
	switch v := arg.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%v", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case time.Time:
		return "'" + v.Format(time.RFC3339Nano) + "'"
	case nil:
		return "NULL"
	default:
		return fmt.Sprintf("'%v'", v)
	}
}
