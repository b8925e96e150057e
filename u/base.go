package u

import (
	"fmt"
)

// Must panics if err is not nil
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func fmtPanicMsg(def string, args []any) string {
	if len(args) == 0 {
		return def
	}
	s := fmt.Sprintf("%s", args[0])
	if len(args) > 1 {
		s = fmt.Sprintf(s, args[1:]...)
	}
	return s
}

// PanicIf panics if cond is true. args is optional format string and its arguments
func PanicIf(cond bool, args ...any) {
	if !cond {
		return
	}
	panic(fmtPanicMsg("condition failed", args))
}

// PanicIfErr panics if err is not nil. args is an optional message that overrides err.Error()
func PanicIfErr(err error, args ...any) {
	if err == nil {
		return
	}
	panic(fmtPanicMsg(err.Error(), args))
}
