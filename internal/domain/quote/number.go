package quote

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const numberPrefix = "RM"

func formatNumber(seq int, date time.Time) string {
	return fmt.Sprintf("%s%04d-%s", numberPrefix, seq, date.Format("06"))
}

// numberSeq extracts the sequence from an RM0001-23 style number so seeded
// quotes advance the counter. Returns 0 for anything unparseable.
func numberSeq(number string) int {
	rest, ok := strings.CutPrefix(number, numberPrefix)
	if !ok {
		return 0
	}
	digits, _, _ := strings.Cut(rest, "-")
	seq, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return seq
}
