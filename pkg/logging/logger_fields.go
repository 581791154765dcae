package logging

import (
	"time"

	"go.uber.org/zap"
)

// Common field constructors
func String(key, value string) Field {
	return zap.String(key, value)
}

func Int(key string, value int) Field {
	return zap.Int(key, value)
}

func Int64(key string, value int64) Field {
	return zap.Int64(key, value)
}

func Float64(key string, value float64) Field {
	return zap.Float64(key, value)
}

func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

// Error returns an "error" field, or a no-op field for a nil error.
func Error(err error) Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.String("error", err.Error())
}

func Any(key string, value any) Field {
	return zap.Any(key, value)
}

// Domain helpers

func Component(name string) Field {
	return String("component", name)
}

func ActorID(id int) Field {
	return Int("actor_id", id)
}

func Algorithm(name string) Field {
	return String("algorithm", name)
}

func QueryID(id string) Field {
	return String("query_id", id)
}

func Hops(n int) Field {
	return Int("hops", n)
}

func Weight(w int) Field {
	return Int("weight", w)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}
