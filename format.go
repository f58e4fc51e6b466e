package natset

import (
	"strconv"
	"strings"
)

// String renders s as "Set<[1, 2, 3]>".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteString("Set<[")
	first := true
	for n := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString("]>")
	return sb.String()
}
