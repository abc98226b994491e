package scope

import (
	"runtime"
	"strconv"
	"strings"
)

// goroutineID extrai o id da goroutine corrente do cabeçalho de
// runtime.Stack ("goroutine N [status]:"). O runtime não expõe API pública
// para isso; o formato do cabeçalho é estável desde Go 1.0.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
