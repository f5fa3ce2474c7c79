package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load bool
	Eval bool
	Dump bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("YFLOW_DEBUG_LOAD")
	d.Eval = boolEnv("YFLOW_DEBUG_EVAL")
	d.Dump = boolEnv("YFLOW_DEBUG_DUMP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}
func Dump() bool {
	return d.Dump
}

// SetDump overrides YFLOW_DEBUG_DUMP and returns the previous setting.
func SetDump(on bool) bool {
	prev := d.Dump
	d.Dump = on
	return prev
}
