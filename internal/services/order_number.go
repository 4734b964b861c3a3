package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// orderNumberPrefix scopes order numbers to a UTC day: ORDyyyymmdd.
func orderNumberPrefix(t time.Time) string {
	return "ORD" + t.UTC().Format("20060102")
}

// nextOrderNumber continues the day's counter from the last issued number,
// restarting at 1 when the suffix is missing or unreadable.
func nextOrderNumber(prefix, last string) string {
	counter := 1
	if last != "" {
		if i := strings.LastIndex(last, "-"); i >= 0 {
			if n, err := strconv.Atoi(last[i+1:]); err == nil {
				counter = n + 1
			}
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, counter)
}
